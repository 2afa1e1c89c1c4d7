package sand

// Place stamps m into every in-bounds cell strictly within radius of
// (cx, cy) and returns the number of cells written. Each write wakes the cell
// and its neighbors.
func (g *Grid) Place(m Material, cx, cy, radius int) int {
	if !m.Valid() || radius <= 0 {
		return 0
	}
	r2 := radius * radius
	y0, y1 := max(cy-radius, 0), min(cy+radius, g.Height()-1)
	x0, x1 := max(cx-radius, 0), min(cx+radius, g.Width()-1)
	n := 0
	for y := y0; y <= y1; y++ {
		dy := y - cy
		for x := x0; x <= x1; x++ {
			dx := x - cx
			if dx*dx+dy*dy >= r2 {
				continue
			}
			g.Set(x, y, m)
			n++
		}
	}
	return n
}

// Fill writes m over the rectangle [x0,x1)x[y0,y1), clipped to the grid.
func (g *Grid) Fill(m Material, x0, y0, x1, y1 int) {
	for y := max(y0, 0); y < min(y1, g.Height()); y++ {
		for x := max(x0, 0); x < min(x1, g.Width()); x++ {
			g.Set(x, y, m)
		}
	}
}
