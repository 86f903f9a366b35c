package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glow eases a highlight intensity between 0 and 1 as an instance gains and
// loses the pointer. Wire Highlight/Unhighlight into the instance's
// OnHighlight/OnUnhighlight callbacks, call Update once per frame, and feed
// Intensity into whatever visual the consumer renders (tint, outline,
// emission). Rowan itself draws nothing.
//
// Retargeting mid-fade tweens from the current intensity, so rapid
// enter/leave flicker never snaps.
type Glow struct {
	// FadeIn and FadeOut are the transition durations in seconds.
	FadeIn  float32
	FadeOut float32
	// Ease is the easing function, ease.OutQuad if nil.
	Ease ease.TweenFunc

	tween     *gween.Tween
	intensity float32
}

// NewGlow creates a Glow with the given fade durations in seconds.
func NewGlow(fadeIn, fadeOut float32) *Glow {
	return &Glow{FadeIn: fadeIn, FadeOut: fadeOut}
}

// Highlight starts easing the intensity toward 1.
func (g *Glow) Highlight() {
	g.retarget(1, g.FadeIn)
}

// Unhighlight starts easing the intensity toward 0.
func (g *Glow) Unhighlight() {
	g.retarget(0, g.FadeOut)
}

func (g *Glow) retarget(to, duration float32) {
	if duration <= 0 {
		g.tween = nil
		g.intensity = to
		return
	}
	fn := g.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	g.tween = gween.New(g.intensity, to, duration, fn)
}

// Update advances the active fade by dt seconds and returns the current
// intensity in [0, 1].
func (g *Glow) Update(dt float32) float32 {
	if g.tween != nil {
		v, finished := g.tween.Update(dt)
		g.intensity = v
		if finished {
			g.tween = nil
		}
	}
	return g.intensity
}

// Intensity returns the current intensity without advancing the fade.
func (g *Glow) Intensity() float32 {
	return g.intensity
}
