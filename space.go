package blaze

// CollisionEventType identifies the kind of collision event sent to a
// [CollisionSink].
type CollisionEventType uint8

const (
	// EventCollision fires every frame a solid (non-trigger) pair overlaps.
	EventCollision CollisionEventType = iota
	// EventTriggerEnter fires on the first frame a trigger pair overlaps.
	EventTriggerEnter
	// EventTriggerStay fires on every subsequent overlapping frame.
	EventTriggerStay
	// EventTriggerExit fires on the first frame a previously overlapping
	// trigger pair no longer overlaps.
	EventTriggerExit
)

// CollisionEvent carries collision data for the ECS bridge. A and B are the
// pair as visited by the pass; MTV is A's push-out direction.
type CollisionEvent struct {
	Type    CollisionEventType
	A, B    *Collider
	MTV     Vec2
	Overlap Vec2
}

// CollisionSink is the interface for optional ECS integration. When set on a
// Space, every dispatched collision and trigger transition is also forwarded
// as an event. See blaze/ecs for a Donburi-backed implementation.
type CollisionSink interface {
	EmitCollision(event CollisionEvent)
}

// Space owns a set of colliders and runs the broad-phase pass. It is an
// explicit context object: two Spaces never share state, so concurrent game
// instances (and tests) cannot interfere with each other.
//
// Space is single-threaded. Step is meant to run from the fixed-update
// callback; Add, Remove, and SetPosition must come from the same goroutine
// and never from inside a running pass.
type Space struct {
	colliders []*Collider
	sink      CollisionSink
}

// NewSpace creates an empty Space.
func NewSpace() *Space {
	return &Space{}
}

// SetSink sets the optional collision event sink.
func (s *Space) SetSink(sink CollisionSink) {
	s.sink = sink
}

// Add registers a collider with the space and returns it as the handle for
// later SetPosition/Remove calls. Adding the same collider twice is a
// warned no-op.
func (s *Space) Add(c *Collider) *Collider {
	for _, existing := range s.colliders {
		if existing == c {
			warnf("collider added to space twice; ignored")
			return c
		}
	}
	if c.current == nil {
		c.current = make(map[*Collider]struct{})
	}
	if c.previous == nil {
		c.previous = make(map[*Collider]struct{})
	}
	s.colliders = append(s.colliders, c)
	return c
}

// Remove unregisters a collider. Colliders that were overlapping it as
// triggers will fire their exit callbacks on the next Step.
func (s *Space) Remove(c *Collider) {
	for i, existing := range s.colliders {
		if existing == c {
			s.colliders = append(s.colliders[:i], s.colliders[i+1:]...)
			return
		}
	}
}

// SetPosition updates a collider's authoritative owner position. World-space
// bounds are derived from it (plus Offset) at the top of the next Step.
func (s *Space) SetPosition(c *Collider, position Vec2) {
	c.position = position
}

// Len returns the number of registered colliders.
func (s *Space) Len() int {
	return len(s.colliders)
}

// Colliders returns the registered colliders. The returned slice MUST NOT
// be mutated; it is exposed for the debug overlay.
func (s *Space) Colliders() []*Collider {
	return s.colliders
}

// Step runs one full collision pass:
//
//  1. Refresh every enabled collider's world-space bounds from its owner
//     position.
//  2. Test every unordered pair that passes the symmetric layer/mask gate;
//     dispatch solid or trigger callbacks for intersecting pairs.
//  3. After the whole pass, fire trigger exits for overlaps that ended,
//     then swap each collider's current/previous tracking sets.
//
// Callbacks run under a recover that logs and continues, so one panicking
// callback cannot abort the remainder of the pass.
func (s *Space) Step() {
	for _, c := range s.colliders {
		if c.Enabled {
			c.refreshBounds()
		}
	}

	for i := 0; i < len(s.colliders); i++ {
		a := s.colliders[i]
		if !a.Enabled {
			continue
		}
		for j := i + 1; j < len(s.colliders); j++ {
			b := s.colliders[j]
			if !b.Enabled {
				continue
			}
			if !a.canCollideWith(b) {
				continue
			}
			if !a.intersects(b) {
				continue
			}
			s.dispatchPair(a, b)
		}
	}

	s.finishFrame()
}

// dispatchPair handles one intersecting, gate-approved pair.
func (s *Space) dispatchPair(a, b *Collider) {
	contactA := a.contactWith(b)
	contactB := b.contactWith(a)

	if a.IsTrigger || b.IsTrigger {
		s.dispatchTrigger(a, contactA)
		s.dispatchTrigger(b, contactB)
		return
	}

	invoke(a.OnCollision, contactA)
	invoke(b.OnCollision, contactB)
	s.emit(CollisionEvent{Type: EventCollision, A: a, B: b, MTV: contactA.MTV, Overlap: contactA.Overlap})
}

// dispatchTrigger records this frame's overlap for c and fires enter on the
// first overlapping frame, stay on every one after.
func (s *Space) dispatchTrigger(c *Collider, contact Contact) {
	other := contact.Other
	c.current[other] = struct{}{}
	if _, wasTouching := c.previous[other]; !wasTouching {
		invoke(c.OnTriggerEnter, contact)
		s.emit(CollisionEvent{Type: EventTriggerEnter, A: c, B: other, MTV: contact.MTV, Overlap: contact.Overlap})
	} else {
		invoke(c.OnTriggerStay, contact)
		s.emit(CollisionEvent{Type: EventTriggerStay, A: c, B: other, MTV: contact.MTV, Overlap: contact.Overlap})
	}
}

// finishFrame detects ended trigger overlaps and swaps the tracking sets.
// Runs exactly once per Step, after the full pairwise pass.
func (s *Space) finishFrame() {
	for _, c := range s.colliders {
		for other := range c.previous {
			if _, still := c.current[other]; !still {
				invoke(c.OnTriggerExit, Contact{Other: other})
				s.emit(CollisionEvent{Type: EventTriggerExit, A: c, B: other})
			}
		}
		// Swap and reuse the maps instead of reallocating every frame.
		c.previous, c.current = c.current, c.previous
		clear(c.current)
	}
}

func (s *Space) emit(event CollisionEvent) {
	if s.sink != nil {
		s.sink.EmitCollision(event)
	}
}

// invoke runs a collision callback, logging and swallowing panics so the
// rest of the pass survives a misbehaving callback.
func invoke(cb func(Contact), contact Contact) {
	if cb == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			warnf("collision callback panicked: %v", r)
		}
	}()
	cb(contact)
}
