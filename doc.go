// Package rowan is an interaction dispatcher for [Ebitengine] scene objects.
//
// Rowan answers one question each frame (which object is the pointer
// targeting?) and drives a consistent per-object lifecycle from the answer:
// highlight and unhighlight on target change, an instant activation start on
// press, a per-frame hold tick while the activation runs, and exactly one
// end per start no matter how the activation finishes. Rendering, physics,
// and concrete object behavior stay on the consumer's side of the callback
// contract.
//
// # Quick start
//
// Register geometry with an index, bind behavior to the returned ID, and
// step the dispatcher once per frame:
//
//	index := rowan.NewShapeIndex()
//	d := rowan.NewDispatcher(index, rowan.LayerAll)
//
//	id := index.Add(rowan.HitRect{Width: 60, Height: 60}, 120, 200, 1)
//	d.Register(id, door)
//
//	dev := rowan.NewDevice()
//
//	func (g *Game) Update() error {
//		dev.Poll(d)
//		d.Step(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// Here door implements [Interactable], the five-callback capability set
// every interactive object provides. The dispatcher owns all highlight and
// activation state; implementations only react.
//
// # Evaluation order
//
// [Dispatcher.Step] runs three phases in a fixed order: highlight updates,
// then queued press/release edges against the updated target, then one hold
// tick per running activation. A press arriving the frame the pointer moved
// onto an object is honored; a press on an object the pointer just left is
// not. A hold started this frame takes its first tick the next frame.
//
// # Backends
//
// Target resolution goes through the [Index] interface. [ShapeIndex] tests
// local-space hit shapes ordered by Z; [SpaceIndex] runs a [resolv] cell
// space ordered by center distance. Both orderings are explicit, tested
// policies.
//
// # Extras
//
// [Glow] eases a highlight intensity with [gween] for visual feedback.
// [Device] polls real mouse/touch input and supports synthetic injection.
// [Runner] drives scripted interaction sequences for automated tests.
// [EventSink] forwards every transition to an ECS; a [Donburi] adapter
// lives in rowan/ecs.
//
// Rowan is single-threaded and frame-synchronous throughout: call it from
// the Ebitengine update loop only.
//
// [Ebitengine]: https://ebitengine.org
// [resolv]: https://github.com/solarlune/resolv
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package rowan
