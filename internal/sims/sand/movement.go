package sand

// moveTo moves the material at (x, y) into (nx, ny), applying the mover's
// replace_with transform at the destination and leaving Air behind.
func (e *Engine) moveTo(g *Grid, x, y, nx, ny int, props *Properties) {
	g.Set(nx, ny, props.Replace(g.Get(x, y), g.Get(nx, ny)))
	g.Set(x, y, Air)
	g.MarkUpdated(nx, ny)
	g.MarkUpdated(x, y)
}

// swap exchanges (x1, y1) with (x2, y2) when the mover at (x1, y1) sinks in
// the destination material. It succeeds with probability SinkChance.
func (e *Engine) swap(g *Grid, x1, y1, x2, y2 int, props *Properties) bool {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return false
	}
	dst := g.Get(x2, y2)
	if !props.CanSinkIn.Has(dst) || g.IsUpdated(x2, y2) {
		return false
	}
	if e.rng.Float64() >= e.params.SinkChance {
		return false
	}
	g.Set(x2, y2, props.Replace(g.Get(x1, y1), dst))
	g.Set(x1, y1, dst)
	g.MarkUpdated(x1, y1)
	g.MarkUpdated(x2, y2)
	return true
}

// sides returns the horizontal offsets in the order they should be tried.
func (e *Engine) sides() (int, int) {
	if e.rng.Bool() {
		return -1, 1
	}
	return 1, -1
}

// fallDown moves the cell straight down, or sinks it through the cell below.
func (e *Engine) fallDown(g *Grid, x, y int, props *Properties) bool {
	if g.IsUpdated(x, y) || y >= g.Height()-1 {
		return false
	}
	if g.SpaceAvailable(x, y+1, props) {
		e.moveTo(g, x, y, x, y+1, props)
		return true
	}
	return e.swap(g, x, y, x, y+1, props)
}

// fallLeftRight moves the cell to one of the diagonals below it.
func (e *Engine) fallLeftRight(g *Grid, x, y int, props *Properties) bool {
	if g.IsUpdated(x, y) || y >= g.Height()-1 {
		return false
	}
	return e.shift(g, x, y, 1, props)
}

// flowLeftRight moves the cell to one of its horizontal neighbors.
func (e *Engine) flowLeftRight(g *Grid, x, y int, props *Properties) bool {
	if g.IsUpdated(x, y) {
		return false
	}
	return e.shift(g, x, y, 0, props)
}

// shift tries both horizontal neighbors of row y+dy in random order, free
// space first and sink swaps second.
func (e *Engine) shift(g *Grid, x, y, dy int, props *Properties) bool {
	first, second := e.sides()
	ny := y + dy
	for _, dx := range [2]int{first, second} {
		if g.SpaceAvailable(x+dx, ny, props) {
			e.moveTo(g, x, y, x+dx, ny, props)
			return true
		}
	}
	for _, dx := range [2]int{first, second} {
		if e.swap(g, x, y, x+dx, ny, props) {
			return true
		}
	}
	return false
}

// canMove reports whether any destination the movement primitives would try
// holds a material the mover could replace or sink in. It ignores the updated
// flags, so a false result holds until a neighbor changes.
func canMove(g *Grid, x, y int, props *Properties, down, sideways bool) bool {
	reach := props.CanReplace.Union(props.CanSinkIn)
	open := func(nx, ny int) bool {
		m := g.Get(nx, ny)
		return m != OutOfBounds && reach.Has(m)
	}
	if down && (open(x, y+1) || open(x-1, y+1) || open(x+1, y+1)) {
		return true
	}
	return sideways && (open(x-1, y) || open(x+1, y))
}
