package ui

import (
	"math"
	"strconv"

	"sandfall/internal/core"
)

const defaultFloatStep = 0.05

// stepFloat returns the value one step away from v in direction dir, clamped
// to the control bounds. ok is false when the step would not change v.
func stepFloat(ctrl core.ParameterControl, v float64, dir int) (float64, bool) {
	if dir == 0 {
		return v, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := ctrl.Clamp(v + float64(dir)*step)
	if math.Abs(target-v) < 1e-9 {
		return v, false
	}
	return target, true
}

// formatFloat prints v with a precision suited to the control's step.
func formatFloat(ctrl core.ParameterControl, v float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Status is the per-frame application state shown above the controls.
type Status struct {
	Material string
	Brush    int
	TickMS   float64
	Paused   bool
	Overruns int
}

// Lines renders the status block.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		"Material: " + s.Material,
		"Brush:    " + strconv.Itoa(s.Brush),
		"Tick:     " + strconv.FormatFloat(s.TickMS, 'f', 2, 64) + " ms",
		"Overruns: " + strconv.Itoa(s.Overruns),
		"State:    " + state,
	}
}
