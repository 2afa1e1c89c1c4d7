package sand

import "image/color"

var sandPalette = buildSandPalette()

// Palette exposes the display colors indexed by Material.
func (w *World) Palette() []color.RGBA { return sandPalette }

// Color returns the display color of m.
func Color(m Material) color.RGBA {
	if int(m) >= len(sandPalette) {
		return sandPalette[OutOfBounds]
	}
	return sandPalette[m]
}

func buildSandPalette() []color.RGBA {
	p := make([]color.RGBA, NumMaterials)
	p[Air] = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	p[Sand] = color.RGBA{R: 230, G: 200, B: 90, A: 255}
	p[Water] = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	p[Wall] = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	p[Wood] = color.RGBA{R: 120, G: 76, B: 36, A: 255}
	p[Fire] = color.RGBA{R: 255, G: 110, B: 20, A: 255}
	p[Oil] = color.RGBA{R: 70, G: 45, B: 60, A: 255}
	p[Acid] = color.RGBA{R: 120, G: 240, B: 40, A: 255}
	p[Lava] = color.RGBA{R: 220, G: 40, B: 10, A: 255}
	p[Stone] = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	p[Explosive] = color.RGBA{R: 200, G: 30, B: 90, A: 255}
	p[Explosion] = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	p[OutOfBounds] = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	return p
}
