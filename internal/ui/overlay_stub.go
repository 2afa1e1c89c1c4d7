//go:build !ebiten

package ui

import "sandfall/internal/core"

// Overlay is a placeholder used when the ebiten build tag is absent. It still
// tracks the menu selection.
type Overlay struct {
	menu *Menu
}

// NewOverlay constructs a stub overlay.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{menu: NewMenu(nil)}
	if painter, ok := sim.(core.Painter); ok {
		o.menu = NewMenu(painter.Brushes())
	}
	return o
}

// Menu exposes the selection state.
func (o *Overlay) Menu() *Menu { return o.menu }

// Update never consumes input in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
