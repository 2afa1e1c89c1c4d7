package sand

import "math"

// Explode scorches an approximately circular area around (x, y) by casting
// rays at fixed angular steps. Each ray turns the cells it crosses into Fire
// and stops at the first material the explosion cannot replace. Cells already
// updated this tick are passed over. Long radii leave gaps between rays.
func (e *Engine) Explode(g *Grid, x, y int, radius float64) {
	if radius < 0 {
		return
	}
	props := e.reg.Properties(Explosion)
	angleStep := e.params.ExplosionAngleStep
	stepLen := e.params.ExplosionStepLength
	for a := 0.0; a < 2*math.Pi; a += angleStep {
		cos, sin := math.Cos(a), math.Sin(a)
		for r := 0.0; r <= radius; r += stepLen {
			px := x + int(math.Round(cos*r))
			py := y + int(math.Round(sin*r))
			m := g.Get(px, py)
			if !props.CanReplace.Has(m) {
				break
			}
			if g.IsUpdated(px, py) {
				continue
			}
			e.transform(g, px, py, Fire)
		}
	}
}
