package sand

import (
	"sandfall/internal/core"
	pcore "sandfall/pkg/core"
)

// World adapts a Grid and its Engine to the core.Sim contract.
type World struct {
	cfg Config

	grid   *Grid
	engine *Engine
	rng    *pcore.RNG
	frame  uint64
}

// New returns a sand world of Air with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// grid starts as Air; call Reset to seed the configured scene.
func NewWithConfig(cfg Config) *World {
	cfg.Params = cfg.Params.normalized()
	rng := pcore.NewRNG(cfg.Seed)
	engine := NewEngine(DefaultRegistry(), cfg.Params, rng)
	engine.FullScan = cfg.FullScan
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	return &World{cfg: cfg, grid: grid, engine: engine, rng: rng}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Cells exposes the material layer.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the simulated grid.
func (w *World) Grid() *Grid { return w.grid }

// Engine exposes the tick driver.
func (w *World) Engine() *Engine { return w.engine }

// Config returns the active configuration.
func (w *World) Config() Config {
	c := w.cfg
	c.Params = w.engine.Params()
	c.FullScan = w.engine.FullScan
	return c
}

// Frame returns the index of the next tick.
func (w *World) Frame() uint64 { return w.frame }

// Reset clears the grid, reseeds the randomness and builds the configured
// scene. A zero seed selects the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.engine.SetSource(w.rng)
	w.frame = 0
	w.grid.Clear()
	buildScene(w.grid, w.cfg.Scene, effective)
	w.grid.MarkAllEligible()
}

// Step advances the world by one tick.
func (w *World) Step() {
	w.engine.Step(w.grid, w.frame)
	w.frame++
}

// Place stamps m as a disk into the grid. Call between ticks.
func (w *World) Place(m Material, cx, cy, radius int) int {
	return w.grid.Place(m, cx, cy, radius)
}

// Brushes lists the paintable materials in menu order.
func (w *World) Brushes() []core.Brush {
	out := make([]core.Brush, len(MenuOrder))
	for i, m := range MenuOrder {
		out[i] = core.Brush{Name: m.String(), Value: uint8(m)}
	}
	return out
}

// Paint implements core.Painter.
func (w *World) Paint(value uint8, cx, cy, radius int) {
	w.Place(Material(value), cx, cy, radius)
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
