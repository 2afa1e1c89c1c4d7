//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA
	budget  *core.TickBudget
	log     core.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	brush      int
	eraseValue uint8
	cursor     render.Brush
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger core.Logger) *Game {
	if logger == nil {
		logger = core.NopLogger{}
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		hud:     ui.NewHUD(sim, HUDWidth),
		budget:  core.NewTickBudget(cfg.TPS),
		log:     logger,
		scale:   max(cfg.Scale, 1),
		seed:    cfg.Seed,
		brush:   ClampBrush(cfg.Brush),
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		g.palette = provider.Palette()
	}
	for _, b := range g.overlay.Menu().Brushes() {
		if b.Name == "air" {
			g.eraseValue = b.Value
		}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Infof("reset %s with seed %d", g.sim.Name(), seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.brush = ClampBrush(g.brush + 1)
	} else if dy < 0 {
		g.brush = ClampBrush(g.brush - 1)
	}

	onMenu := g.overlay.Update()
	g.handlePaint(onMenu)

	if !g.paused || g.tickOnce {
		if d, over := g.budget.Time(g.sim.Step); over {
			g.log.Warnf("tick took %s, budget %s (%d overruns)", d, g.budget.Budget, g.budget.Overruns)
		}
		g.tickOnce = false
	}

	size := g.sim.Size()
	g.hud.Update(size.W*g.scale, g.status())
	return nil
}

func (g *Game) handlePaint(onMenu bool) {
	painter, ok := g.sim.(core.Painter)
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	cx, cy := mx/g.scale, my/g.scale
	g.cursor = render.Brush{X: cx, Y: cy, Radius: g.brush, Visible: cx >= 0 && cx < size.W && cy >= 0 && cy < size.H}
	if !ok || !g.cursor.Visible {
		return
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !onMenu:
		if b, ok := g.overlay.Menu().Selected(); ok {
			painter.Paint(b.Value, cx, cy, g.brush)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		painter.Paint(g.eraseValue, cx, cy, g.brush)
	}
}

func (g *Game) status() ui.Status {
	s := ui.Status{
		Brush:    g.brush,
		TickMS:   float64(g.budget.Last) / float64(time.Millisecond),
		Paused:   g.paused,
		Overruns: g.budget.Overruns,
	}
	if b, ok := g.overlay.Menu().Selected(); ok {
		s.Material = b.Name
	}
	return s
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.cursor, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
