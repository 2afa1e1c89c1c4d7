package sand

const fireReach = 2

// updateFire spreads into its radius-2 disk and burns out without fuel.
func (e *Engine) updateFire(g *Grid, x, y int) bool {
	props := e.reg.Properties(Fire)
	flammable, fires := 0, 0
	for dy := -fireReach; dy <= fireReach; dy++ {
		for dx := -fireReach; dx <= fireReach; dx++ {
			if dx == 0 && dy == 0 || dx*dx+dy*dy > fireReach*fireReach {
				continue
			}
			nx, ny := x+dx, y+dy
			switch m := g.Get(nx, ny); {
			case m == Fire:
				fires++
			case m == Air:
				if !g.IsUpdated(nx, ny) && e.chance(e.params.FireSpreadChance) {
					e.transform(g, nx, ny, Fire)
				}
			case m != OutOfBounds && props.CanReplace.Has(m):
				flammable++
				if !g.IsUpdated(nx, ny) && e.chance(e.params.FireIgniteChance) {
					e.transform(g, nx, ny, Fire)
				}
			}
		}
	}
	if flammable == 0 && (fires < 2 || e.rng.Float64() > e.params.FireLingerChance) {
		e.transform(g, x, y, Air)
	}
	return true
}
