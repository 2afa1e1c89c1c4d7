package sand

import pcore "sandfall/pkg/core"

// Engine advances a Grid one tick at a time. It owns the grid exclusively for
// the duration of Step and is not safe for concurrent use.
type Engine struct {
	reg    *Registry
	params Params
	rng    pcore.Source

	// FullScan visits every cell instead of only eligible ones. Results are
	// identical for identical randomness, only slower.
	FullScan bool
}

// NewEngine builds an engine. A nil registry selects DefaultRegistry and a nil
// source selects the process-wide generator.
func NewEngine(reg *Registry, params Params, src pcore.Source) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if src == nil {
		src = pcore.Global()
	}
	return &Engine{reg: reg, params: params.normalized(), rng: src}
}

// Registry returns the material table in use.
func (e *Engine) Registry() *Registry { return e.reg }

// Params returns the current tunables.
func (e *Engine) Params() Params { return e.params }

// SetParams replaces the tunables. Call between ticks.
func (e *Engine) SetParams(p Params) { e.params = p.normalized() }

// SetSource replaces the randomness source. Call between ticks.
func (e *Engine) SetSource(src pcore.Source) {
	if src == nil {
		src = pcore.Global()
	}
	e.rng = src
}

// Step advances g by one tick. Rows are scanned top to bottom; even frames
// scan each row right to left and odd frames left to right.
func (e *Engine) Step(g *Grid, frame uint64) {
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	reverse := frame%2 == 0
	for y := 0; y < h; y++ {
		for i := 0; i < w; i++ {
			x := i
			if reverse {
				x = w - 1 - i
			}
			idx := y*w + x
			if g.updated[idx] {
				continue
			}
			if !e.FullScan && !g.eligible[idx] {
				continue
			}
			rule := e.reg.Rule(Material(cells[idx]))
			if rule == nil || !rule(e, g, x, y) {
				g.eligible[idx] = false
			}
		}
	}
	g.ClearUpdated()
}

// chance draws once and reports whether the draw fell below p.
func (e *Engine) chance(p float64) bool {
	return e.rng.Float64() < p
}

// transform turns (x, y) into m for the rest of the tick.
func (e *Engine) transform(g *Grid, x, y int, m Material) {
	g.Set(x, y, m)
	g.MarkUpdated(x, y)
}
