//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status block and parameter panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     Status

	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type hudControlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: strings.ToUpper(sim.Name())}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type == core.ParamTypeFloat {
				h.controls = append(h.controls, hudControlState{control: ctrl})
			}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes control values, stores the status line and handles clicks
// on the +/- buttons.
func (h *HUD) Update(panelOffsetX int, status Status) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = status
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		state.value, state.hasValue = parsed, err == nil
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.floatSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			dir = -1
		case pointInRect(px, my, state.plusRect):
			dir = 1
		default:
			continue
		}
		if target, ok := stepFloat(state.control, state.value, dir); ok {
			if h.floatSetter.SetFloatParameter(state.control.Key, target) {
				state.value = target
			}
		}
		return
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.status.Lines() {
		y := statusTop + i*statusLineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 180, G: 200, B: 180, A: 255})
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := "--"
		valueColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if state.hasValue {
			value = formatFloat(state.control, state.value)
			valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canDown := stepFloat(state.control, state.value, -1)
		_, canUp := stepFloat(state.control, state.value, 1)
		enabled := state.hasValue && h.floatSetter != nil
		h.drawButton(state.minusRect, "-", enabled && canDown)
		h.drawButton(state.plusRect, "+", enabled && canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

const (
	panelPadding     = 12
	lineHeight       = 30
	buttonSize       = 20
	buttonGap        = 6
	headerBaseline   = 14
	labelBaseline    = 19
	statusLineHeight = 16
	statusTop        = panelPadding + headerBaseline + 22
	controlsTop      = statusTop + 5*statusLineHeight
)
