package blaze

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom is clamped to this range; a non-positive zoom would make the view
// matrix singular.
const (
	minZoom = 0.01
	maxZoom = 100.0
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// shakeState tracks an active camera shake. The offset re-randomizes every
// frame within an intensity envelope that decays linearly to zero over the
// duration — jitter, not a smooth drift.
type shakeState struct {
	intensity float64
	duration  float64
	elapsed   float64
	offset    Vec2
}

// Camera controls the view into the world: position, zoom, rotation, and
// viewport. It produces the world↔screen transforms the renderer consumes.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	// Values outside [0.01, 100] are clamped when the view matrix computes.
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// CullMargin pads VisibleBounds when the renderer culls; entities
	// within the margin of the viewport edge still draw.
	CullMargin float64

	followTarget  *Entity
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	shake *shakeState
	rng   *rand.Rand

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:       1.0,
		Viewport:   viewport,
		CullMargin: 64,
		dirty:      true,
	}
}

// Follow makes the camera track an entity's Transform with the given offset
// and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following. The blend is a direct per-frame lerp
// (position += (target-position)*lerp), so the effective smoothing depends
// on the frame rate — this matches the established camera feel and is
// deliberately not an exponential-decay formula.
func (c *Camera) Follow(target *Entity, offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target entity.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of the given tile in a tile-based layout.
func (c *Camera) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration float32, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	c.ScrollTo(worldX, worldY, duration, easeFn)
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Shake starts a camera shake with the given starting intensity (world
// units) and duration (seconds). The intensity falls off linearly; the
// offset is re-randomized every frame within the current envelope, then
// cleared exactly when the duration elapses. A new Shake replaces any
// active one.
func (c *Camera) Shake(intensity, duration float64) {
	if duration <= 0 || intensity <= 0 {
		c.shake = nil
		return
	}
	c.shake = &shakeState{intensity: intensity, duration: duration}
}

// ShakeOffset returns the current shake displacement. Zero when no shake is
// active.
func (c *Camera) ShakeOffset() Vec2 {
	if c.shake == nil {
		return Vec2{}
	}
	return c.shake.offset
}

// update advances follow, scroll, bounds clamping, and shake. Called from
// World.frameUpdate.
func (c *Camera) update(dt float64) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	// Follow target
	if c.followTarget != nil && !c.followTarget.Destroyed() {
		if t, ok := GetComponent[Transform](c.followTarget); ok {
			targetX := t.Position.X + c.followOffsetX
			targetY := t.Position.Y + c.followOffsetY
			c.X += (targetX - c.X) * c.followLerp
			c.Y += (targetY - c.Y) * c.followLerp
		}
	}

	// Scroll animation
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	// Bounds clamping
	if c.BoundsEnabled {
		c.clampToBounds()
	}

	// Shake
	if c.shake != nil {
		c.shake.elapsed += dt
		if c.shake.elapsed >= c.shake.duration {
			c.shake = nil
		} else {
			falloff := c.shake.intensity * (1 - c.shake.elapsed/c.shake.duration)
			c.shake.offset = Vec2{
				X: (c.rand()*2 - 1) * falloff,
				Y: (c.rand()*2 - 1) * falloff,
			}
		}
		c.dirty = true
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// rand returns a uniform sample in [0, 1) from the camera's source.
func (c *Camera) rand() float64 {
	if c.rng != nil {
		return c.rng.Float64()
	}
	return rand.Float64()
}

// clampToBounds restricts camera position so the visible area stays within
// Bounds.
func (c *Camera) clampToBounds() {
	zoom := clamp(c.Zoom, minZoom, maxZoom)
	halfW := c.Viewport.Width / (2 * zoom)
	halfH := c.Viewport.Height / (2 * zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) *
// Translate(-(X+shakeX), -(Y+shakeY)) where cx, cy = viewport center. The
// shake offset is part of the matrix, so ScreenToWorld inverts it too and
// the round-trip holds mid-shake.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	focusX, focusY := c.X, c.Y
	if c.shake != nil {
		focusX += c.shake.offset.X
		focusY += c.shake.offset.Y
	}

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := clamp(c.Zoom, minZoom, maxZoom)

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*focusX+sin*focusY)
	ty := cy + z*(-sin*focusX-cos*focusY)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space, expanded by CullMargin. The renderer skips
// anything outside it.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}.Expand(c.CullMargin)
}

// MarkDirty forces a recomputation of the view matrix. Call after
// bulk-setting X/Y/Zoom/Rotation directly between updates.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
