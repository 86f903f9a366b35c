package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// syntheticKind distinguishes injected pointer events.
type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticRelease
)

// syntheticEvent represents a single injected pointer event in screen
// coordinates, converted to world coordinates exactly like real input.
type syntheticEvent struct {
	x, y float64
	kind syntheticKind
}

// Device polls Ebitengine mouse and touch state once per frame and feeds
// the dispatcher a single primary pointer: the mouse, or the first active
// touch. Additional concurrent touches are ignored. Press/release edges are
// derived with inpututil, so the dispatcher only ever sees already-debounced
// one-shot signals.
type Device struct {
	// ScreenToWorld, when set, converts screen coordinates to the world
	// space the dispatcher's index is built in (e.g. through a camera).
	ScreenToWorld func(x, y float64) (float64, float64)

	injectQueue []syntheticEvent
	touchBuf    []ebiten.TouchID
	touchID     ebiten.TouchID
	touchActive bool
}

// NewDevice creates a Device with no coordinate transform.
func NewDevice() *Device {
	return &Device{}
}

// Poll reads input state and forwards pointer position and edges to the
// dispatcher. Call once per Update, before Dispatcher.Step. While injected
// events are queued, real input is ignored.
func (dev *Device) Poll(d *Dispatcher) {
	if dev.processInjected(d) {
		return
	}
	if dev.pollTouch(d) {
		return
	}
	dev.pollMouse(d)
}

// processInjected pops one queued synthetic event per frame.
func (dev *Device) processInjected(d *Dispatcher) bool {
	if len(dev.injectQueue) == 0 {
		return false
	}
	evt := dev.injectQueue[0]
	copy(dev.injectQueue, dev.injectQueue[1:])
	dev.injectQueue = dev.injectQueue[:len(dev.injectQueue)-1]

	wx, wy := dev.toWorld(evt.x, evt.y)
	d.MovePointer(wx, wy)
	switch evt.kind {
	case syntheticPress:
		d.Press()
	case syntheticRelease:
		d.Release()
	}
	return true
}

func (dev *Device) pollMouse(d *Dispatcher) {
	mx, my := ebiten.CursorPosition()
	wx, wy := dev.toWorld(float64(mx), float64(my))
	d.MovePointer(wx, wy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.Press()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.Release()
	}
}

// pollTouch tracks the first touch as the primary pointer. Returns true
// while a touch interaction is in progress, suppressing mouse polling.
func (dev *Device) pollTouch(d *Dispatcher) bool {
	if dev.touchActive {
		if inpututil.IsTouchJustReleased(dev.touchID) {
			dev.touchActive = false
			d.Release()
			return true
		}
		tx, ty := ebiten.TouchPosition(dev.touchID)
		wx, wy := dev.toWorld(float64(tx), float64(ty))
		d.MovePointer(wx, wy)
		return true
	}

	dev.touchBuf = inpututil.AppendJustPressedTouchIDs(dev.touchBuf[:0])
	if len(dev.touchBuf) == 0 {
		return false
	}
	dev.touchID = dev.touchBuf[0]
	dev.touchActive = true
	tx, ty := ebiten.TouchPosition(dev.touchID)
	wx, wy := dev.toWorld(float64(tx), float64(ty))
	d.MovePointer(wx, wy)
	d.Press()
	return true
}

func (dev *Device) toWorld(x, y float64) (float64, float64) {
	if dev.ScreenToWorld != nil {
		return dev.ScreenToWorld(x, y)
	}
	return x, y
}

// --- Synthetic input ---

// InjectMove queues a pointer move to the given screen coordinates.
// The event is consumed on the next Poll.
func (dev *Device) InjectMove(x, y float64) {
	dev.injectQueue = append(dev.injectQueue, syntheticEvent{x: x, y: y, kind: syntheticMove})
}

// InjectPress queues a pointer move to the given screen coordinates followed
// by a press edge, consumed in a single Poll.
func (dev *Device) InjectPress(x, y float64) {
	dev.injectQueue = append(dev.injectQueue, syntheticEvent{x: x, y: y, kind: syntheticPress})
}

// InjectRelease queues a pointer move to the given screen coordinates
// followed by a release edge.
func (dev *Device) InjectRelease(x, y float64) {
	dev.injectQueue = append(dev.injectQueue, syntheticEvent{x: x, y: y, kind: syntheticRelease})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (dev *Device) InjectTap(x, y float64) {
	dev.InjectPress(x, y)
	dev.InjectRelease(x, y)
}

// InjectHold queues a press, frames-2 held move frames, and a release, all
// at the same screen coordinates. Minimum frames is 2 (press + release).
func (dev *Device) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	dev.InjectPress(x, y)
	for i := 0; i < frames-2; i++ {
		dev.InjectMove(x, y)
	}
	dev.InjectRelease(x, y)
}
