package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider maps cell values to display colors. Cell value v is drawn
// with Palette()[v].
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Brush is a paintable cell value offered to the user.
type Brush struct {
	Name  string
	Value uint8
}

// Painter is implemented by sims that accept user-painted input between ticks.
type Painter interface {
	Brushes() []Brush
	Paint(value uint8, cx, cy, radius int)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
