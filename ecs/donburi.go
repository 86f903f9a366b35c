// Package ecs provides ECS adapters for rowan.
package ecs

import (
	"github.com/phanxgames/rowan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for rowan lifecycle events.
// Subscribe to this in your ECS systems to receive highlight, start, hold,
// and end transitions.
var LifecycleEventType = events.NewEventType[rowan.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) rowan.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event rowan.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
