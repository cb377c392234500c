// Package ecs provides ECS adapters for blaze's collision event system.
//
// The primary adapter is [NewDonburiSink], which bridges blaze collision
// events (solid contacts and trigger enter/stay/exit transitions) into a
// [Donburi] world as typed events. Subscribe to [CollisionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	blazeWorld.Space().SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
