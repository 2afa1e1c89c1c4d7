package sand

import pcore "sandfall/pkg/core"

// constSource returns fixed draws. f=0 makes every chance succeed, f close to
// 1 makes every chance fail.
type constSource struct {
	b bool
	f float64
}

func (s constSource) Bool() bool       { return s.b }
func (s constSource) Float64() float64 { return s.f }
func (s constSource) IntN(int) int     { return 0 }

func alwaysSource() constSource { return constSource{b: true, f: 0} }
func neverSource() constSource  { return constSource{b: true, f: 0.999} }

func newTestEngine(src pcore.Source) *Engine {
	return NewEngine(DefaultRegistry(), DefaultParams(), src)
}

func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, runeMaterial[c])
		}
	}
	return g
}

var runeMaterial = map[rune]Material{
	'.': Air,
	's': Sand,
	'w': Water,
	'#': Wall,
	'W': Wood,
	'f': Fire,
	'o': Oil,
	'a': Acid,
	'l': Lava,
	'S': Stone,
	'x': Explosive,
	'*': Explosion,
}
