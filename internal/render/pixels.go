package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Brush is the cursor footprint drawn over the grid.
type Brush struct {
	X, Y    int
	Radius  int
	Visible bool
}

// onOutline reports whether (x, y) lies inside the brush disk with at least one
// 4-neighbor outside it. The disk matches the paint rule: dx²+dy² < r².
func (b Brush) onOutline(x, y int) bool {
	inside := func(px, py int) bool {
		dx, dy := px-b.X, py-b.Y
		return dx*dx+dy*dy < b.Radius*b.Radius
	}
	if !inside(x, y) {
		return false
	}
	return !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
}

// shadeBrush lightens the outline pixels of b in a w*h RGBA buffer.
func shadeBrush(buf []byte, w, h int, b Brush) {
	if !b.Visible || b.Radius <= 0 || w <= 0 || h <= 0 {
		return
	}
	y0, y1 := max(b.Y-b.Radius, 0), min(b.Y+b.Radius, h-1)
	x0, x1 := max(b.X-b.Radius, 0), min(b.X+b.Radius, w-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !b.onOutline(x, y) {
				continue
			}
			base := (y*w + x) * 4
			for c := 0; c < 3; c++ {
				buf[base+c] = lighten(buf[base+c])
			}
			buf[base+3] = 255
		}
	}
}

func lighten(v uint8) uint8 {
	return v + (255-v)/2
}
