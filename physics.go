package blaze

// Transform holds an entity's world-space position, rotation, and scale.
// It is the authoritative position: colliders and the camera read from it.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
}

// NewTransform creates a Transform at (x, y) with unit scale.
func NewTransform(x, y float64) Transform {
	return Transform{Position: Vec2{x, y}, Scale: Vec2{1, 1}}
}

// Velocity is linear velocity in world units per second, integrated by
// [VelocitySystem]. Damping is a per-second proportional decay; 0 keeps
// velocity constant.
type Velocity struct {
	Linear  Vec2
	Damping float64
}

// ColliderRef attaches a Space-registered collider to an entity. Each fixed
// step [ColliderSystem] copies the entity's Transform position into the
// Space before the pairwise pass runs.
type ColliderRef struct {
	Collider *Collider
}

// VelocitySystem advances Transform positions by explicit Euler
// integration. Register it as a fixed system so integration always sees the
// constant fixed step and stays reproducible across host frame rates.
type VelocitySystem struct{}

// Update implements System.
func (VelocitySystem) Update(w *World, dt float64) {
	Each2(w, func(e *Entity, t *Transform, v *Velocity) {
		t.Position = t.Position.Add(v.Linear.Scale(dt))
		if v.Damping > 0 {
			decay := 1 - v.Damping*dt
			if decay < 0 {
				decay = 0
			}
			v.Linear = v.Linear.Scale(decay)
		}
	})
}

// ColliderSystem syncs entity positions into the collision space. It must
// run after VelocitySystem (use a higher priority) and before the Space
// steps, which the World guarantees by stepping the Space after all fixed
// systems.
type ColliderSystem struct{}

// Update implements System.
func (ColliderSystem) Update(w *World, dt float64) {
	Each2(w, func(e *Entity, t *Transform, ref *ColliderRef) {
		if ref.Collider != nil {
			w.Space().SetPosition(ref.Collider, t.Position)
		}
	})
}

// ResolveSolid pushes a transform out of a solid contact by the contact's
// minimum translation vector. Typical use is inside an OnCollision
// callback:
//
//	collider.OnCollision = func(contact blaze.Contact) {
//		blaze.ResolveSolid(transform, contact)
//	}
func ResolveSolid(t *Transform, contact Contact) {
	t.Position = t.Position.Add(contact.MTV)
}
