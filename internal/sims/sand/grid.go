package sand

import "sandfall/internal/core"

// Cell is a snapshot of one grid position.
type Cell struct {
	Material Material
	// Updated is set once the cell received its outcome for the current tick.
	Updated bool
	// Eligible marks the cell as worth visiting on the next pass.
	Eligible bool
}

// Grid owns width*height cells in row-major order. Materials live in a
// ByteGrid so the display layer can read them directly; the per-tick flags are
// dense parallel layers.
type Grid struct {
	mat      *core.ByteGrid
	updated  []bool
	eligible []bool

	onWrite func(x, y int, m Material)
}

// NewGrid returns a grid of Air. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	mat := core.NewByteGrid(w, h)
	total := mat.W * mat.H
	return &Grid{
		mat:      mat,
		updated:  make([]bool, total),
		eligible: make([]bool, total),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.mat.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.mat.H }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool { return g.mat.InBounds(x, y) }

// Cells exposes the material layer, one byte per cell.
func (g *Grid) Cells() []uint8 { return g.mat.Cells() }

// Get returns the material at (x, y), or OutOfBounds.
func (g *Grid) Get(x, y int) Material {
	return Material(g.mat.At(x, y, uint8(OutOfBounds)))
}

// Cell returns the full state at (x, y). Out-of-range cells report
// OutOfBounds with both flags false.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{Material: OutOfBounds}
	}
	i := g.mat.Index(x, y)
	return Cell{Material: Material(g.mat.Cells()[i]), Updated: g.updated[i], Eligible: g.eligible[i]}
}

// Set stores m at (x, y) and wakes the cell and its neighbors. Out-of-range
// writes and the OutOfBounds sentinel are dropped.
func (g *Grid) Set(x, y int, m Material) {
	if !m.Valid() || !g.mat.Put(x, y, uint8(m)) {
		return
	}
	g.MarkEligible(x, y)
	g.MarkNeighborsEligible(x, y)
	if g.onWrite != nil {
		g.onWrite(x, y, m)
	}
}

// SetWriteHook installs fn to observe every successful Set. Pass nil to remove.
func (g *Grid) SetWriteHook(fn func(x, y int, m Material)) { g.onWrite = fn }

// MarkUpdated flags (x, y) as processed for the current tick.
func (g *Grid) MarkUpdated(x, y int) {
	if g.InBounds(x, y) {
		g.updated[g.mat.Index(x, y)] = true
	}
}

// IsUpdated reports whether (x, y) was processed this tick.
func (g *Grid) IsUpdated(x, y int) bool {
	return g.InBounds(x, y) && g.updated[g.mat.Index(x, y)]
}

// SpaceAvailable reports whether a mover with props may move into (x, y).
func (g *Grid) SpaceAvailable(x, y int, props *Properties) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.mat.Index(x, y)
	return !g.updated[i] && props.CanReplace.Has(Material(g.mat.Cells()[i]))
}

// MarkEligible flags (x, y) to be visited.
func (g *Grid) MarkEligible(x, y int) {
	if g.InBounds(x, y) {
		g.eligible[g.mat.Index(x, y)] = true
	}
}

// MarkNeighborsEligible flags the 8-neighborhood of (x, y).
func (g *Grid) MarkNeighborsEligible(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g.MarkEligible(x+dx, y+dy)
		}
	}
}

// IsEligible reports whether (x, y) is flagged for a visit.
func (g *Grid) IsEligible(x, y int) bool {
	return g.InBounds(x, y) && g.eligible[g.mat.Index(x, y)]
}

// MarkAllEligible flags every cell.
func (g *Grid) MarkAllEligible() {
	for i := range g.eligible {
		g.eligible[i] = true
	}
}

// ClearUpdated resets the per-tick flag on every cell.
func (g *Grid) ClearUpdated() { clear(g.updated) }

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int { return g.mat.Count(uint8(m)) }

// Census counts every material.
func (g *Grid) Census() [NumMaterials]int {
	var out [NumMaterials]int
	for _, c := range g.mat.Cells() {
		if int(c) < NumMaterials {
			out[c]++
		}
	}
	return out
}

// Clear resets the grid to Air with no flags set.
func (g *Grid) Clear() {
	g.mat.Clear()
	clear(g.updated)
	clear(g.eligible)
}

// countAround counts m among the four orthogonal neighbors of (x, y).
func (g *Grid) countAround(x, y int, m Material) int {
	n := 0
	if g.Get(x-1, y) == m {
		n++
	}
	if g.Get(x+1, y) == m {
		n++
	}
	if g.Get(x, y-1) == m {
		n++
	}
	if g.Get(x, y+1) == m {
		n++
	}
	return n
}

func (g *Grid) clearEligible(x, y int) {
	if g.InBounds(x, y) {
		g.eligible[g.mat.Index(x, y)] = false
	}
}
