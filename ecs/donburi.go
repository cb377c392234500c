package ecs

import (
	"github.com/phanxgames/blaze"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for blaze collision events.
// Subscribe to this in your ECS systems to receive solid contacts and
// trigger transitions.
var CollisionEventType = events.NewEventType[blaze.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a CollisionSink backed by a Donburi world.
// Collision events are published to CollisionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) blaze.CollisionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event blaze.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
