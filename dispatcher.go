package rowan

// --- Per-instance state ---

// instanceState holds the dispatcher-owned state for one registered
// instance. Nothing outside the dispatcher mutates these fields.
type instanceState struct {
	obj         Interactable
	highlighted bool
	hold        *holdTask // non-nil iff an activation is running
}

// --- Edge queue ---

type edgeKind uint8

const (
	edgePress edgeKind = iota
	edgeRelease
)

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	highlight   []handler[HighlightContext]
	unhighlight []handler[HighlightContext]
	start       []handler[InteractContext]
	hold        []handler[HoldContext]
	end         []handler[InteractContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered dispatcher-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventHighlight:
		h.reg.highlight = removeHandler(h.reg.highlight, h.id)
	case EventUnhighlight:
		h.reg.unhighlight = removeHandler(h.reg.unhighlight, h.id)
	case EventInteractStart:
		h.reg.start = removeHandler(h.reg.start, h.id)
	case EventInteractHold:
		h.reg.hold = removeHandler(h.reg.hold, h.id)
	case EventInteractEnd:
		h.reg.end = removeHandler(h.reg.end, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Dispatcher ---

// Dispatcher is the per-frame interaction state machine. It resolves the
// pointer target against an Index, drives highlight transitions, consumes
// press/release edges, and advances at most one hold task per instance.
//
// Call MovePointer/Press/Release as input arrives, then Step once per frame.
// Step evaluates in a fixed order: highlight updates for every instance,
// then queued edges against the updated target, then hold ticks. A press
// that arrives the same frame the pointer moved onto an instance is honored;
// a press on an instance the pointer just left is not.
//
// Dispatcher is not goroutine-safe (no atomics — rowan assumes a
// single-threaded frame loop, the Ebitengine update goroutine).
type Dispatcher struct {
	index Index
	mask  Layer

	instances map[ID]*instanceState
	order     []ID // registration order; fixes edge/tick iteration

	px, py float64
	target ID
	edges  []edgeKind
	frame  uint64

	handlers handlerRegistry
	sink     EventSink
}

// NewDispatcher creates a dispatcher resolving targets against index,
// restricted to instances whose layer intersects mask.
func NewDispatcher(index Index, mask Layer) *Dispatcher {
	return &Dispatcher{
		index:     index,
		mask:      mask,
		instances: make(map[ID]*instanceState),
	}
}

// Register binds an Interactable to an instance ID allocated by the index.
// The instance starts unhighlighted with no activation. Registering an ID
// that is already bound cancels any running activation on the old binding
// and replaces it.
func (d *Dispatcher) Register(id ID, obj Interactable) {
	if id == 0 || obj == nil {
		return
	}
	if st, ok := d.instances[id]; ok {
		if st.hold != nil {
			d.endInteraction(id, st, EndDestroyed)
		}
		st.obj = obj
		return
	}
	d.instances[id] = &instanceState{obj: obj}
	d.order = append(d.order, id)
}

// Destroy removes an instance from the dispatcher. A running activation is
// cancelled synchronously (OnInteractEnd fires with EndDestroyed before
// Destroy returns, and no further tick runs); a held highlight is released
// with OnUnhighlight. The caller remains responsible for removing the
// instance's geometry from the index.
func (d *Dispatcher) Destroy(id ID) {
	st, ok := d.instances[id]
	if !ok {
		return
	}
	if st.hold != nil {
		d.endInteraction(id, st, EndDestroyed)
	}
	if st.highlighted {
		st.highlighted = false
		d.fireUnhighlight(id)
	}
	delete(d.instances, id)
	for i := range d.order {
		if d.order[i] == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if d.target == id {
		d.target = 0
	}
}

// MovePointer records the pointer's world position for the next Step.
func (d *Dispatcher) MovePointer(x, y float64) {
	d.px = x
	d.py = y
}

// Press queues an activation press edge. Edges are momentary signals, not
// levels: a press while the pointer is over no eligible instance is consumed
// without effect.
func (d *Dispatcher) Press() {
	d.edges = append(d.edges, edgePress)
}

// Release queues an activation release edge. A release with no running
// activation is consumed without effect.
func (d *Dispatcher) Release() {
	d.edges = append(d.edges, edgeRelease)
}

// Target returns the instance currently under the pointer, or 0.
// Valid after the most recent Step.
func (d *Dispatcher) Target() ID {
	return d.target
}

// Highlighted reports whether the instance was the resolver's result on the
// most recent Step.
func (d *Dispatcher) Highlighted(id ID) bool {
	st, ok := d.instances[id]
	return ok && st.highlighted
}

// Interacting reports whether an activation is running for the instance.
func (d *Dispatcher) Interacting(id ID) bool {
	st, ok := d.instances[id]
	return ok && st.hold != nil
}

// Frame returns the number of Steps taken.
func (d *Dispatcher) Frame() uint64 {
	return d.frame
}

// SetEventSink sets the optional ECS bridge. Every lifecycle transition,
// hold ticks included, is forwarded as a LifecycleEvent.
func (d *Dispatcher) SetEventSink(sink EventSink) {
	d.sink = sink
}

// --- Dispatcher-level event registration ---

// OnHighlight registers a dispatcher-level callback fired before any
// instance's own OnHighlight.
func (d *Dispatcher) OnHighlight(fn func(HighlightContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.highlight = append(d.handlers.highlight, handler[HighlightContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventHighlight}
}

// OnUnhighlight registers a dispatcher-level callback for unhighlight events.
func (d *Dispatcher) OnUnhighlight(fn func(HighlightContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.unhighlight = append(d.handlers.unhighlight, handler[HighlightContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventUnhighlight}
}

// OnInteractStart registers a dispatcher-level callback for activation starts.
func (d *Dispatcher) OnInteractStart(fn func(InteractContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.start = append(d.handlers.start, handler[InteractContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventInteractStart}
}

// OnInteractHold registers a dispatcher-level callback fired on every hold
// tick. Unlike the instance callback it cannot stop the activation.
func (d *Dispatcher) OnInteractHold(fn func(HoldContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.hold = append(d.handlers.hold, handler[HoldContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventInteractHold}
}

// OnInteractEnd registers a dispatcher-level callback for activation ends.
func (d *Dispatcher) OnInteractEnd(fn func(InteractContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.end = append(d.handlers.end, handler[InteractContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventInteractEnd}
}

// --- Frame evaluation ---

// Step advances the state machine by one frame. dt is the frame duration in
// seconds, passed through to hold ticks.
func (d *Dispatcher) Step(dt float64) {
	d.frame++
	d.updateHighlight()
	d.consumeEdges()
	d.tickHolds(dt)
}

// resolve returns the best Query candidate that is registered with this
// dispatcher. Geometry the index knows about but the dispatcher does not is
// skipped, keeping indexes shareable between dispatchers.
func (d *Dispatcher) resolve() ID {
	for _, id := range d.index.Query(d.px, d.py, d.mask) {
		if _, ok := d.instances[id]; ok {
			return id
		}
	}
	return 0
}

// updateHighlight recomputes the resolver result and fires highlight
// transitions. Callbacks fire only on state change, never while held.
func (d *Dispatcher) updateHighlight() {
	next := d.resolve()
	if next == d.target {
		return
	}
	if prev, ok := d.instances[d.target]; ok && prev.highlighted {
		prev.highlighted = false
		d.fireUnhighlight(d.target)
	}
	d.target = next
	if st, ok := d.instances[next]; ok {
		st.highlighted = true
		d.fireHighlight(next)
	}
}

// consumeEdges drains the edge queue in arrival order against the target
// updated this frame.
func (d *Dispatcher) consumeEdges() {
	for _, e := range d.edges {
		switch e {
		case edgePress:
			st, ok := d.instances[d.target]
			if !ok || st.hold != nil {
				// No target, or the start guard: never two starts
				// without an intervening end.
				continue
			}
			st.hold = &holdTask{startFrame: d.frame}
			d.fireStart(d.target)
		case edgeRelease:
			for _, id := range d.order {
				if st := d.instances[id]; st.hold != nil {
					d.endInteraction(id, st, EndReleased)
				}
			}
		}
	}
	d.edges = d.edges[:0]
}

// tickHolds advances every running activation by one tick, in registration
// order. Activations started this frame stay suspended until the next.
func (d *Dispatcher) tickHolds(dt float64) {
	for _, id := range d.order {
		st := d.instances[id]
		if st == nil || st.hold == nil || st.hold.startFrame == d.frame {
			continue
		}
		// Extrinsic stop: losing the resolver selection ends the
		// activation on its own, mirroring the release path. No tick
		// runs for it this frame.
		if id != d.target {
			d.endInteraction(id, st, EndLostTarget)
			continue
		}
		frame, elapsed := st.hold.tick(dt)
		ctx := HoldContext{ID: id, X: d.px, Y: d.py, Frame: frame, Elapsed: elapsed, Dt: dt}
		for _, h := range d.handlers.hold {
			h.fn(ctx)
		}
		d.emit(LifecycleEvent{Type: EventInteractHold, ID: id, X: d.px, Y: d.py, Frame: frame, Elapsed: elapsed})
		if st.obj.OnInteractHold(ctx) {
			d.endInteraction(id, st, EndCompleted)
		}
	}
}

// endInteraction fires OnInteractEnd and clears the hold handle. The handle
// is cleared first so no tick can observe a hold whose end already fired.
func (d *Dispatcher) endInteraction(id ID, st *instanceState, reason EndReason) {
	hold := st.hold
	st.hold = nil
	ctx := InteractContext{ID: id, X: d.px, Y: d.py, Reason: reason}
	for _, h := range d.handlers.end {
		h.fn(ctx)
	}
	st.obj.OnInteractEnd(ctx)
	evt := LifecycleEvent{Type: EventInteractEnd, ID: id, X: d.px, Y: d.py, Reason: reason}
	if hold != nil {
		evt.Frame = hold.frame
		evt.Elapsed = hold.elapsed
	}
	d.emit(evt)
}

// --- Event dispatch ---

func (d *Dispatcher) fireHighlight(id ID) {
	ctx := HighlightContext{ID: id, X: d.px, Y: d.py}
	for _, h := range d.handlers.highlight {
		h.fn(ctx)
	}
	d.instances[id].obj.OnHighlight(ctx)
	d.emit(LifecycleEvent{Type: EventHighlight, ID: id, X: d.px, Y: d.py})
}

func (d *Dispatcher) fireUnhighlight(id ID) {
	ctx := HighlightContext{ID: id, X: d.px, Y: d.py}
	for _, h := range d.handlers.unhighlight {
		h.fn(ctx)
	}
	d.instances[id].obj.OnUnhighlight(ctx)
	d.emit(LifecycleEvent{Type: EventUnhighlight, ID: id, X: d.px, Y: d.py})
}

func (d *Dispatcher) fireStart(id ID) {
	ctx := InteractContext{ID: id, X: d.px, Y: d.py}
	for _, h := range d.handlers.start {
		h.fn(ctx)
	}
	d.instances[id].obj.OnInteractStart(ctx)
	d.emit(LifecycleEvent{Type: EventInteractStart, ID: id, X: d.px, Y: d.py})
}

func (d *Dispatcher) emit(evt LifecycleEvent) {
	if d.sink == nil {
		return
	}
	d.sink.EmitEvent(evt)
}
