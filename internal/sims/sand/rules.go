package sand

// updateParticle falls straight down, then diagonally.
func (e *Engine) updateParticle(g *Grid, x, y int) bool {
	props := e.reg.Properties(g.Get(x, y))
	if !canMove(g, x, y, props, true, false) {
		return false
	}
	if !e.fallDown(g, x, y, props) {
		e.fallLeftRight(g, x, y, props)
	}
	return true
}

// updateLiquid falls like a particle and otherwise flows sideways. On the
// last row only the sideways flow applies.
func (e *Engine) updateLiquid(g *Grid, x, y int) bool {
	props := e.reg.Properties(g.Get(x, y))
	if !canMove(g, x, y, props, true, true) {
		return false
	}
	if y >= g.Height()-1 {
		e.flowLeftRight(g, x, y, props)
		return true
	}
	switch {
	case e.fallDown(g, x, y, props):
	case e.fallLeftRight(g, x, y, props):
	default:
		e.flowLeftRight(g, x, y, props)
	}
	return true
}

// updateWood ignites while touching lava.
func (e *Engine) updateWood(g *Grid, x, y int) bool {
	if g.countAround(x, y, Lava) == 0 {
		return false
	}
	if e.chance(e.params.WoodIgniteChance) {
		e.transform(g, x, y, Fire)
	}
	return true
}

// updateOil ignites next to lava and otherwise behaves as a liquid.
func (e *Engine) updateOil(g *Grid, x, y int) bool {
	lava := g.countAround(x, y, Lava)
	if lava >= 1 && lava <= 4 && e.chance(e.params.OilIgniteChance) {
		e.transform(g, x, y, Fire)
		return true
	}
	return e.updateLiquid(g, x, y) || lava > 0
}

// updateExplosive detonates when lava or fire touches it.
func (e *Engine) updateExplosive(g *Grid, x, y int) bool {
	if g.countAround(x, y, Lava) > 0 || g.countAround(x, y, Fire) > 0 {
		e.transform(g, x, y, Fire)
		e.Explode(g, x, y, e.params.ExplosionRadius)
		return true
	}
	return e.updateParticle(g, x, y)
}

// updateExplosion resolves a leftover explosion marker into fire.
func (e *Engine) updateExplosion(g *Grid, x, y int) bool {
	e.transform(g, x, y, Fire)
	return true
}
