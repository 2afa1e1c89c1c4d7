package sand

import "sandfall/internal/core"

// Parameters reports the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.Config()
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", cfg.Width),
				core.IntParam("h", "Height", cfg.Height),
				core.IntParam("frame", "Frame", int(w.frame)),
				core.BoolParam("full_scan", "Full scan", cfg.FullScan),
			},
		},
	}
	var rules core.ParameterGroup
	rules.Name = "Rules"
	for _, f := range params.floatFields() {
		rules.Params = append(rules.Params, core.FloatParam(f.key, f.label, *f.ptr))
	}
	groups = append(groups, rules)
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	params := w.engine.Params()
	fields := params.floatFields()
	out := make([]core.ParameterControl, 0, len(fields))
	for _, f := range fields {
		out = append(out, core.ParameterControl{
			Key:    f.key,
			Label:  f.label,
			Type:   core.ParamTypeFloat,
			Step:   f.step,
			Min:    f.min,
			Max:    f.max,
			HasMin: true,
			HasMax: true,
		})
	}
	return out
}

// SetFloatParameter updates a float tunable, clamping it to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	params := w.engine.Params()
	for _, f := range params.floatFields() {
		if f.key != key {
			continue
		}
		*f.ptr = min(max(value, f.min), f.max)
		w.engine.SetParams(params)
		return true
	}
	return false
}
