package blaze

// ColliderShape distinguishes the collision geometry a Collider carries.
type ColliderShape uint8

const (
	// ShapeBox is an axis-aligned box sized Width x Height.
	ShapeBox ColliderShape = iota
	// ShapeCircle is a circle with the collider's Radius.
	ShapeCircle
)

// Contact describes one side of a collision or trigger overlap.
type Contact struct {
	// Other is the collider on the other side of the pair.
	Other *Collider
	// MTV is the minimum translation vector that separates this collider
	// from Other. Zero for trigger-exit contacts (the pair no longer
	// overlaps, so there is nothing to separate).
	MTV Vec2
	// Overlap holds the penetration extents: per-axis overlap for box
	// pairs, the radial penetration depth on both components for pairs
	// involving a circle.
	Overlap Vec2
}

// Collider is a collision participant registered with a [Space]. It is either
// a box or a circle, positioned each frame from its owner's authoritative
// position plus Offset.
//
// Layer says what the collider IS; Mask says what it COLLIDES WITH. Two
// colliders interact only if each one's mask admits the other's layer — the
// gate is symmetric, a one-sided match is not enough.
type Collider struct {
	Shape  ColliderShape
	Width  float64 // box extent (ShapeBox)
	Height float64 // box extent (ShapeBox)
	Radius float64 // circle radius (ShapeCircle)

	// Offset displaces the collider from its owner's position. The box
	// anchors its top-left corner at position+Offset; the circle anchors
	// its center there.
	Offset Vec2

	Layer uint32
	Mask  uint32

	// IsTrigger selects overlap-event semantics (enter/stay/exit) instead
	// of the per-frame solid OnCollision callback.
	IsTrigger bool

	// Enabled colliders participate in the pairwise pass. Disabled ones
	// are skipped entirely and drop out of trigger tracking, firing exits.
	Enabled bool

	// Owner optionally links back to the entity this collider belongs to.
	// The Space never dereferences it; it exists for callbacks.
	Owner *Entity

	OnCollision    func(Contact)
	OnTriggerEnter func(Contact)
	OnTriggerStay  func(Contact)
	OnTriggerExit  func(Contact)

	position Vec2 // authoritative owner position, set via Space.SetPosition
	bounds   AABB // world-space box, refreshed each Step (ShapeBox)
	circle   Circle

	// Trigger overlap tracking. current fills during the pairwise pass;
	// previous holds last frame's overlaps. They swap once per frame after
	// the pass — never mid-pass — so "still touching" and "just separated"
	// stay distinguishable without a second pass over the pair list.
	current  map[*Collider]struct{}
	previous map[*Collider]struct{}
}

// NewBoxCollider creates an enabled box collider. Layer and Mask default to
// colliding with everything.
func NewBoxCollider(width, height float64) *Collider {
	return &Collider{
		Shape:    ShapeBox,
		Width:    width,
		Height:   height,
		Layer:    1,
		Mask:     ^uint32(0),
		Enabled:  true,
		current:  make(map[*Collider]struct{}),
		previous: make(map[*Collider]struct{}),
	}
}

// NewCircleCollider creates an enabled circle collider. Layer and Mask
// default to colliding with everything.
func NewCircleCollider(radius float64) *Collider {
	return &Collider{
		Shape:    ShapeCircle,
		Radius:   radius,
		Layer:    1,
		Mask:     ^uint32(0),
		Enabled:  true,
		current:  make(map[*Collider]struct{}),
		previous: make(map[*Collider]struct{}),
	}
}

// Position returns the owner position last given to [Space.SetPosition].
func (c *Collider) Position() Vec2 {
	return c.position
}

// Bounds returns the collider's world-space AABB as of the last Step. For
// circles this is the circle's bounding box.
func (c *Collider) Bounds() AABB {
	if c.Shape == ShapeCircle {
		return AABB{
			Min: Vec2{c.circle.Center.X - c.Radius, c.circle.Center.Y - c.Radius},
			Max: Vec2{c.circle.Center.X + c.Radius, c.circle.Center.Y + c.Radius},
		}
	}
	return c.bounds
}

// refreshBounds recomputes world-space geometry from the authoritative
// position. Runs at the top of every Step, before any pair is tested.
func (c *Collider) refreshBounds() {
	anchor := c.position.Add(c.Offset)
	if c.Shape == ShapeCircle {
		c.circle = Circle{Center: anchor, Radius: c.Radius}
		return
	}
	c.bounds = AABB{Min: anchor, Max: Vec2{anchor.X + c.Width, anchor.Y + c.Height}}
}

// canCollideWith evaluates the symmetric layer/mask gate. Cheap rejection,
// always checked before any geometric test.
func (c *Collider) canCollideWith(o *Collider) bool {
	return c.Mask&o.Layer != 0 && o.Mask&c.Layer != 0
}

// intersects tests world-space overlap between c and o for every shape
// combination.
func (c *Collider) intersects(o *Collider) bool {
	switch {
	case c.Shape == ShapeBox && o.Shape == ShapeBox:
		return c.bounds.Intersects(o.bounds)
	case c.Shape == ShapeCircle && o.Shape == ShapeCircle:
		return c.circle.Intersects(o.circle)
	case c.Shape == ShapeBox && o.Shape == ShapeCircle:
		return c.bounds.IntersectsCircle(o.circle)
	default:
		return o.bounds.IntersectsCircle(c.circle)
	}
}

// contactWith computes this collider's side of an intersecting pair: the MTV
// pushing c away from o, and the penetration extents.
func (c *Collider) contactWith(o *Collider) Contact {
	var mtv, overlap Vec2
	switch {
	case c.Shape == ShapeBox && o.Shape == ShapeBox:
		mtv = c.bounds.MTV(o.bounds)
		overlap = c.bounds.Overlap(o.bounds)
	case c.Shape == ShapeCircle && o.Shape == ShapeCircle:
		mtv = c.circle.MTV(o.circle)
		depth := c.Radius + o.Radius - c.circle.Center.Sub(o.circle.Center).Length()
		overlap = Vec2{depth, depth}
	case c.Shape == ShapeCircle && o.Shape == ShapeBox:
		mtv = circleAABBMTV(c.circle, o.bounds)
		depth := mtv.Length()
		overlap = Vec2{depth, depth}
	default: // box vs circle: push opposite to the circle's own MTV
		m := circleAABBMTV(o.circle, c.bounds)
		mtv = m.Scale(-1)
		depth := m.Length()
		overlap = Vec2{depth, depth}
	}
	return Contact{Other: o, MTV: mtv, Overlap: overlap}
}
