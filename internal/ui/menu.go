package ui

import (
	"image"

	"sandfall/internal/core"
)

// Menu tracks the brush currently selected from a sim's brush list.
type Menu struct {
	brushes  []core.Brush
	selected int
}

// NewMenu returns a menu selecting the first brush.
func NewMenu(brushes []core.Brush) *Menu {
	return &Menu{brushes: brushes}
}

// Brushes returns the entries in display order.
func (m *Menu) Brushes() []core.Brush { return m.brushes }

// Index returns the position of the selected brush.
func (m *Menu) Index() int { return m.selected }

// Selected returns the current brush. ok is false for an empty menu.
func (m *Menu) Selected() (core.Brush, bool) {
	if len(m.brushes) == 0 {
		return core.Brush{}, false
	}
	return m.brushes[m.selected], true
}

// Select moves the selection to i when it names an entry.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.brushes) {
		return false
	}
	m.selected = i
	return true
}

// Next advances the selection, wrapping at the end.
func (m *Menu) Next() {
	if len(m.brushes) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.brushes)
}

// SelectDigit maps the number row onto the menu: 1-9 pick the first nine
// entries and 0 picks the tenth.
func (m *Menu) SelectDigit(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	if d == 0 {
		return m.Select(9)
	}
	return m.Select(d - 1)
}

// SelectAt picks the swatch under (x, y), if any.
func (m *Menu) SelectAt(x, y int) bool {
	for i := range m.brushes {
		if pointInRect(x, y, swatchRect(i)) {
			return m.Select(i)
		}
	}
	return false
}

// MenuHeight is the vertical space the swatch strip occupies.
const MenuHeight = swatchMargin*2 + swatchSize

func swatchRect(i int) image.Rectangle {
	x := swatchMargin + i*(swatchSize+swatchMargin)
	return image.Rect(x, swatchMargin, x+swatchSize, swatchMargin+swatchSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	swatchSize   = 18
	swatchMargin = 4
)
