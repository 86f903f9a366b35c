package rowan

// ID identifies an interactable instance. IDs are allocated by the spatial
// index the instance is registered with; 0 means "no instance".
type ID uint32

// Layer is a bitmask restricting which instances a query may return.
// An instance is eligible when its layer shares at least one bit with the
// query mask. Layers are set at registration time and never mutated by the
// dispatcher.
type Layer uint32

// LayerAll matches every layer.
const LayerAll Layer = ^Layer(0)

// Vec2 is a 2D vector used for positions and polygon points.
type Vec2 struct {
	X, Y float64
}

// EventType identifies a kind of interaction lifecycle event.
type EventType uint8

const (
	EventHighlight     EventType = iota // fires when an instance becomes the pointer target
	EventUnhighlight                    // fires when an instance stops being the pointer target
	EventInteractStart                  // fires once when an activation begins
	EventInteractHold                   // fires each frame while an activation is held
	EventInteractEnd                    // fires once when an activation ends
)

// EndReason explains why an activation ended.
type EndReason uint8

const (
	EndReleased   EndReason = iota // the activation input was released
	EndCompleted                   // the hold callback reported its work finished
	EndLostTarget                  // the pointer moved off the instance
	EndDestroyed                   // the instance was destroyed mid-activation
)

// HighlightContext carries highlight event data.
type HighlightContext struct {
	ID ID
	// Pointer position in world coordinates at the time of the event.
	X, Y float64
}

// InteractContext carries activation start/end event data.
// Reason is only meaningful for OnInteractEnd.
type InteractContext struct {
	ID     ID
	X, Y   float64
	Reason EndReason
}

// HoldContext carries per-frame hold event data.
type HoldContext struct {
	ID   ID
	X, Y float64
	// Frame counts ticks since the activation started, beginning at 1.
	Frame int
	// Elapsed is the accumulated tick time in seconds since the activation
	// started.
	Elapsed float64
	// Dt is this frame's tick duration in seconds.
	Dt float64
}

// Interactable is the capability set every interactive object implements.
// The dispatcher drives all five callbacks; implementations never need to
// track their own highlight or activation state.
type Interactable interface {
	// OnHighlight fires when the instance becomes the pointer target.
	// It fires on the state change only, never on every frame the state
	// is held.
	OnHighlight(ctx HighlightContext)

	// OnUnhighlight fires when the instance stops being the pointer target.
	OnUnhighlight(ctx HighlightContext)

	// OnInteractStart fires once when an activation begins. It is never
	// fired twice without an intervening OnInteractEnd.
	OnInteractStart(ctx InteractContext)

	// OnInteractHold fires once per frame while the activation is held,
	// starting the frame after OnInteractStart. Returning true ends the
	// activation this tick. The callback must not block; work that does
	// not finish simply resumes on the next frame's tick.
	OnInteractHold(ctx HoldContext) bool

	// OnInteractEnd fires exactly once per OnInteractStart, whether the
	// activation ended by release, hold completion, target loss, or
	// instance destruction.
	OnInteractEnd(ctx InteractContext)
}

// LifecycleEvent carries interaction data for the ECS bridge.
type LifecycleEvent struct {
	Type EventType
	ID   ID
	X    float64
	Y    float64
	// Hold fields (valid for EventInteractHold)
	Frame   int
	Elapsed float64
	// Reason (valid for EventInteractEnd)
	Reason EndReason
}

// EventSink is the interface for optional ECS integration. When set on a
// Dispatcher, every lifecycle transition is forwarded as a LifecycleEvent.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}
