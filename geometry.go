package blaze

import "math"

// AABB is an axis-aligned bounding box stored as min/max corners.
//
// Unlike [Rect], which serves screen-space layout and treats edge-adjacent
// rectangles as intersecting, AABB is the collision primitive and uses
// strict overlap: boxes that merely share an edge do NOT intersect. Solid
// resolution pushes boxes flush against each other, so a flush contact must
// not re-report as a collision the next frame.
type AABB struct {
	Min, Max Vec2
}

// NewAABB creates an AABB from min/max corner coordinates.
func NewAABB(minX, minY, maxX, maxY float64) AABB {
	return AABB{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// Width returns the horizontal extent of the box.
func (a AABB) Width() float64 {
	return a.Max.X - a.Min.X
}

// Height returns the vertical extent of the box.
func (a AABB) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// Center returns the midpoint of the box.
func (a AABB) Center() Vec2 {
	return Vec2{(a.Min.X + a.Max.X) / 2, (a.Min.Y + a.Max.Y) / 2}
}

// Translate returns the box shifted by offset.
func (a AABB) Translate(offset Vec2) AABB {
	return AABB{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

// Intersects reports whether a and b overlap with positive area.
// Edge-touching boxes (zero overlap) do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Overlap returns the overlap extents of a and b along each axis. Both
// components are positive when the boxes intersect; a non-positive component
// means no overlap on that axis.
func (a AABB) Overlap(b AABB) Vec2 {
	return Vec2{
		X: math.Min(a.Max.X, b.Max.X) - math.Max(a.Min.X, b.Min.X),
		Y: math.Min(a.Max.Y, b.Max.Y) - math.Max(a.Min.Y, b.Min.Y),
	}
}

// MTV returns the minimum translation vector that moves a out of b: the
// push-out along whichever single axis has the smaller penetration. The
// result is axis-aligned, never diagonal. Returns the zero vector when the
// boxes do not intersect.
func (a AABB) MTV(b AABB) Vec2 {
	if !a.Intersects(b) {
		return Vec2{}
	}

	// Candidate push-out distances along each axis, both directions.
	pushRight := b.Max.X - a.Min.X // move a in +X until a.Min clears b.Max
	pushLeft := a.Max.X - b.Min.X  // move a in -X until a.Max clears b.Min
	pushDown := b.Max.Y - a.Min.Y
	pushUp := a.Max.Y - b.Min.Y

	var mtvX, mtvY float64
	if pushRight < pushLeft {
		mtvX = pushRight
	} else {
		mtvX = -pushLeft
	}
	if pushDown < pushUp {
		mtvY = pushDown
	} else {
		mtvY = -pushUp
	}

	if math.Abs(mtvX) < math.Abs(mtvY) {
		return Vec2{X: mtvX}
	}
	return Vec2{Y: mtvY}
}

// IntersectsCircle reports whether the box and circle overlap, using the
// closest-point method: clamp the circle's center to the box and compare the
// squared distance against the squared radius.
func (a AABB) IntersectsCircle(c Circle) bool {
	closest := Vec2{
		X: clamp(c.Center.X, a.Min.X, a.Max.X),
		Y: clamp(c.Center.Y, a.Min.Y, a.Max.Y),
	}
	return c.Center.Sub(closest).LengthSq() < c.Radius*c.Radius
}

// Circle is a circular collision shape.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a Circle with the given center and radius.
func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: Vec2{x, y}, Radius: radius}
}

// Intersects reports whether c and o overlap with positive area.
// Tangent circles (distance exactly equal to the radius sum) do not intersect.
func (c Circle) Intersects(o Circle) bool {
	radiusSum := c.Radius + o.Radius
	return c.Center.Sub(o.Center).LengthSq() < radiusSum*radiusSum
}

// MTV returns the minimum translation vector pushing c away from o. When the
// centers coincide exactly there is no separation direction, so the push is
// along +X with magnitude equal to the radius sum. Returns the zero vector
// when the circles do not intersect.
func (c Circle) MTV(o Circle) Vec2 {
	radiusSum := c.Radius + o.Radius
	delta := c.Center.Sub(o.Center)
	distSq := delta.LengthSq()
	if distSq >= radiusSum*radiusSum {
		return Vec2{}
	}
	if distSq == 0 {
		return Vec2{X: radiusSum}
	}
	dist := math.Sqrt(distSq)
	return delta.Scale((radiusSum - dist) / dist)
}

// circleAABBMTV returns the minimum translation vector pushing the circle out
// of the box. The push runs from the box's closest point toward the circle's
// center; when the center is inside the box the closest point coincides with
// the center, so the push falls back to the box axis with the least
// penetration of the circle's own bounding box.
func circleAABBMTV(c Circle, a AABB) Vec2 {
	closest := Vec2{
		X: clamp(c.Center.X, a.Min.X, a.Max.X),
		Y: clamp(c.Center.Y, a.Min.Y, a.Max.Y),
	}
	delta := c.Center.Sub(closest)
	distSq := delta.LengthSq()
	if distSq >= c.Radius*c.Radius {
		return Vec2{}
	}
	if distSq > 0 {
		dist := math.Sqrt(distSq)
		return delta.Scale((c.Radius - dist) / dist)
	}
	// Center inside the box: treat the circle as its bounding box.
	cb := AABB{
		Min: Vec2{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Max: Vec2{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
	return cb.MTV(a)
}
