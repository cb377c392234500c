package blaze

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(40, 0, 90, 50)
	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}
	if !b.Intersects(a) {
		t.Error("intersection should be symmetric")
	}

	far := NewAABB(100, 100, 150, 150)
	if a.Intersects(far) {
		t.Error("disjoint boxes should not intersect")
	}
}

func TestAABBIntersects_EdgeTouching(t *testing.T) {
	// Shared edge, zero overlap: defined as non-intersecting.
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(50, 0, 100, 50)
	if a.Intersects(b) {
		t.Error("edge-touching boxes must not intersect")
	}
	if b.Intersects(a) {
		t.Error("edge-touching boxes must not intersect (reversed)")
	}

	corner := NewAABB(50, 50, 100, 100)
	if a.Intersects(corner) {
		t.Error("corner-touching boxes must not intersect")
	}
}

func TestAABBOverlap(t *testing.T) {
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(40, 0, 90, 50)
	ov := a.Overlap(b)
	if !approxEqual(ov.X, 10, epsilon) || !approxEqual(ov.Y, 50, epsilon) {
		t.Errorf("Overlap = (%v,%v), want (10,50)", ov.X, ov.Y)
	}
}

func TestAABBMTV_AxisSelection(t *testing.T) {
	// X penetration (10) is smaller than Y (50): push along X only.
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(40, 0, 90, 50)
	mtv := a.MTV(b)
	if !approxEqual(mtv.X, -10, epsilon) || mtv.Y != 0 {
		t.Errorf("MTV = (%v,%v), want (-10,0)", mtv.X, mtv.Y)
	}
}

func TestAABBMTV_PushDirections(t *testing.T) {
	// a sits to the right of b's center: push is +X.
	a := NewAABB(40, 0, 90, 50)
	b := NewAABB(0, 0, 50, 50)
	mtv := a.MTV(b)
	if !approxEqual(mtv.X, 10, epsilon) || mtv.Y != 0 {
		t.Errorf("MTV = (%v,%v), want (10,0)", mtv.X, mtv.Y)
	}

	// a overlaps b from above: push is -Y.
	a = NewAABB(0, 0, 50, 50)
	b = NewAABB(0, 40, 50, 90)
	mtv = a.MTV(b)
	if mtv.X != 0 || !approxEqual(mtv.Y, -10, epsilon) {
		t.Errorf("MTV = (%v,%v), want (0,-10)", mtv.X, mtv.Y)
	}
}

func TestAABBMTV_NoIntersection(t *testing.T) {
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(60, 0, 100, 50)
	mtv := a.MTV(b)
	if mtv.X != 0 || mtv.Y != 0 {
		t.Errorf("MTV of disjoint boxes = (%v,%v), want (0,0)", mtv.X, mtv.Y)
	}
}

func TestAABBMTV_NeverDiagonal(t *testing.T) {
	a := NewAABB(0, 0, 50, 50)
	b := NewAABB(30, 35, 80, 85)
	mtv := a.MTV(b)
	if mtv.X != 0 && mtv.Y != 0 {
		t.Errorf("MTV = (%v,%v), must lie on a single axis", mtv.X, mtv.Y)
	}
}

func TestCircleIntersects(t *testing.T) {
	a := NewCircle(0, 0, 10)
	b := NewCircle(15, 0, 10)
	if !a.Intersects(b) {
		t.Error("overlapping circles should intersect")
	}

	// Tangent circles (distance == radius sum) do not intersect.
	c := NewCircle(20, 0, 10)
	if a.Intersects(c) {
		t.Error("tangent circles must not intersect")
	}
}

func TestCircleMTV(t *testing.T) {
	a := NewCircle(0, 0, 10)
	b := NewCircle(15, 0, 10)
	mtv := a.MTV(b)
	// Penetration is 5; a pushes away from b, i.e. -X.
	if !approxEqual(mtv.X, -5, epsilon) || !approxEqual(mtv.Y, 0, epsilon) {
		t.Errorf("MTV = (%v,%v), want (-5,0)", mtv.X, mtv.Y)
	}
}

func TestCircleMTV_CoincidentCenters(t *testing.T) {
	// No separation direction exists: push along +X by the radius sum.
	a := NewCircle(5, 5, 10)
	b := NewCircle(5, 5, 7)
	mtv := a.MTV(b)
	if !approxEqual(mtv.X, 17, epsilon) || mtv.Y != 0 {
		t.Errorf("MTV = (%v,%v), want (17,0)", mtv.X, mtv.Y)
	}
}

func TestAABBIntersectsCircle(t *testing.T) {
	box := NewAABB(0, 0, 50, 50)

	if !box.IntersectsCircle(NewCircle(25, 25, 5)) {
		t.Error("circle inside box should intersect")
	}
	if !box.IntersectsCircle(NewCircle(55, 25, 10)) {
		t.Error("circle overlapping right edge should intersect")
	}
	if box.IntersectsCircle(NewCircle(70, 25, 10)) {
		t.Error("distant circle should not intersect")
	}
	// Closest point is the corner: center (56,56), corner (50,50),
	// distance ~8.49 > radius 8.
	if box.IntersectsCircle(NewCircle(56, 56, 8)) {
		t.Error("circle past the corner should not intersect")
	}
	// Same center, radius 9 > 8.49: intersects.
	if !box.IntersectsCircle(NewCircle(56, 56, 9)) {
		t.Error("circle reaching past the corner should intersect")
	}
}

func TestCircleAABBMTV(t *testing.T) {
	box := NewAABB(0, 0, 50, 50)
	// Circle center right of the box, penetrating 5 units.
	c := NewCircle(55, 25, 10)
	mtv := circleAABBMTV(c, box)
	if !approxEqual(mtv.X, 5, epsilon) || !approxEqual(mtv.Y, 0, epsilon) {
		t.Errorf("MTV = (%v,%v), want (5,0)", mtv.X, mtv.Y)
	}
}

func TestCircleAABBMTV_CenterInside(t *testing.T) {
	box := NewAABB(0, 0, 50, 50)
	// Center inside the box near the right edge: falls back to box axes.
	c := NewCircle(45, 25, 10)
	mtv := circleAABBMTV(c, box)
	if mtv.X == 0 && mtv.Y == 0 {
		t.Fatal("expected non-zero MTV for contained center")
	}
	if mtv.X != 0 && mtv.Y != 0 {
		t.Errorf("MTV = (%v,%v), must lie on a single axis", mtv.X, mtv.Y)
	}
	if mtv.X <= 0 {
		t.Errorf("MTV.X = %v, want a +X push toward the near edge", mtv.X)
	}
}

func TestVec2Helpers(t *testing.T) {
	v := Vec2{3, 4}
	if !approxEqual(v.Length(), 5, epsilon) {
		t.Errorf("Length = %v, want 5", v.Length())
	}
	if !approxEqual(v.LengthSq(), 25, epsilon) {
		t.Errorf("LengthSq = %v, want 25", v.LengthSq())
	}
	n := v.Normalized()
	if !approxEqual(n.Length(), 1, epsilon) {
		t.Errorf("Normalized length = %v, want 1", n.Length())
	}
	if z := (Vec2{}).Normalized(); z.X != 0 || z.Y != 0 {
		t.Errorf("Normalized zero vector = %v, want zero", z)
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}.Expand(5)
	if r.X != 5 || r.Y != 15 || r.Width != 110 || r.Height != 60 {
		t.Errorf("Expand = %+v", r)
	}
}
