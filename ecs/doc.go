// Package ecs provides ECS adapters for rowan's interaction lifecycle.
//
// The primary adapter is [NewDonburiSink], which bridges rowan lifecycle
// events (highlight, start, hold, end) into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dispatcher.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
