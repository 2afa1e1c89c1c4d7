//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Overlay draws the material menu strip on top of the simulation view.
type Overlay struct {
	menu    *Menu
	palette []color.RGBA
	pixel   *ebiten.Image
}

// NewOverlay builds the menu from the sim's brushes. Sims that do not accept
// painting get an empty strip.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{menu: NewMenu(nil)}
	if painter, ok := sim.(core.Painter); ok {
		o.menu = NewMenu(painter.Brushes())
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		o.palette = provider.Palette()
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Menu exposes the selection state.
func (o *Overlay) Menu() *Menu { return o.menu }

// Update applies keyboard selection and reports whether the left click
// landed on the strip.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.menu.Next()
	}
	for d, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			o.menu.SelectDigit(d)
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if len(o.menu.Brushes()) == 0 || my >= MenuHeight || mx >= swatchRect(len(o.menu.Brushes())).Min.X {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.menu.SelectAt(mx, my)
	}
	return true
}

// Draw renders the swatches and the selected material's name.
func (o *Overlay) Draw(screen *ebiten.Image) {
	brushes := o.menu.Brushes()
	if len(brushes) == 0 {
		return
	}
	for i, b := range brushes {
		rect := swatchRect(i)
		if i == o.menu.Index() {
			o.fillRect(screen, rect.Inset(-2), color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
		o.fillRect(screen, rect, o.colorOf(b.Value))
	}
	if b, ok := o.menu.Selected(); ok {
		x := swatchRect(len(brushes)).Min.X + swatchMargin
		text.Draw(screen, b.Name, basicfont.Face7x13, x, swatchMargin+swatchSize-4, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) colorOf(v uint8) color.RGBA {
	if int(v) < len(o.palette) {
		return o.palette[v]
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

func (o *Overlay) fillRect(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
