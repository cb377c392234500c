package blaze

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugSolidColor   = color.RGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff}
	debugTriggerColor = color.RGBA{R: 0xc0, G: 0xc0, B: 0x40, A: 0xff}
)

// DrawDebugOverlay strokes every enabled collider in the world's space
// through the camera transform and prints clock stats in the top-left
// corner. Solid colliders draw green, triggers yellow. Intended for the
// Debug flag in [RunConfig]; call it from your Draw after game rendering.
func DrawDebugOverlay(screen *ebiten.Image, w *World, cam *Camera) {
	for _, c := range w.Space().Colliders() {
		if !c.Enabled {
			continue
		}
		col := debugSolidColor
		if c.IsTrigger {
			col = debugTriggerColor
		}
		drawColliderOutline(screen, c, cam, col)
	}

	clock := w.Clock()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nframe: %d\nelapsed: %.2fs\ncolliders: %d",
		clock.FPS(), clock.FrameCount(), clock.Elapsed(), w.Space().Len()))
}

func drawColliderOutline(screen *ebiten.Image, c *Collider, cam *Camera, col color.Color) {
	if c.Shape == ShapeCircle {
		b := c.Bounds()
		center := b.Center()
		sx, sy := center.X, center.Y
		radius := c.Radius
		if cam != nil {
			sx, sy = cam.WorldToScreen(center.X, center.Y)
			radius *= clamp(cam.Zoom, minZoom, maxZoom)
		}
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 1, col, true)
		return
	}

	b := c.Bounds()
	minX, minY := b.Min.X, b.Min.Y
	maxX, maxY := b.Max.X, b.Max.Y
	if cam != nil {
		minX, minY = cam.WorldToScreen(b.Min.X, b.Min.Y)
		maxX, maxY = cam.WorldToScreen(b.Max.X, b.Max.Y)
	}
	vector.StrokeRect(screen, float32(minX), float32(minY),
		float32(maxX-minX), float32(maxY-minY), 1, col, true)
}
