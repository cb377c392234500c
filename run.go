package blaze

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and host loop for [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// OnDraw renders the world each host frame. cam is the world's first
	// camera, or nil if none was created. Blaze does not draw game content
	// itself; use the camera's transforms for world-space drawing.
	OnDraw func(screen *ebiten.Image, cam *Camera)

	// Debug enables the collider/FPS overlay on top of OnDraw.
	Debug bool
}

// game adapts a World to ebiten.Game. Ebitengine's Update is the host
// animation-frame callback; it drives Loop.Tick with wall-clock time so the
// simulation stays frame-rate independent even if the host tick rate varies.
type game struct {
	world *World
	cfg   RunConfig
	epoch time.Time
}

func (g *game) Update() error {
	g.world.Loop().Tick(time.Since(g.epoch).Seconds())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	var cam *Camera
	if cams := g.world.Cameras(); len(cams) > 0 {
		cam = cams[0]
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen, cam)
	}
	if g.cfg.Debug {
		DrawDebugOverlay(screen, g.world, cam)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window, starts the world's loop, and blocks driving it until
// the window closes. The world's loop is stopped before Run returns.
func Run(w *World, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	w.Loop().Start()
	defer w.Loop().Stop()

	return ebiten.RunGame(&game{world: w, cfg: cfg, epoch: time.Now()})
}
