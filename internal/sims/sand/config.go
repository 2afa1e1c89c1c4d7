package sand

import (
	"strconv"
	"strings"
)

// Params holds the tunable probabilities and explosion geometry.
type Params struct {
	SinkChance       float64
	WoodIgniteChance float64
	OilIgniteChance  float64
	FireIgniteChance float64
	FireSpreadChance float64
	FireLingerChance float64

	ExplosionRadius     float64
	ExplosionAngleStep  float64
	ExplosionStepLength float64
}

// DefaultParams returns the standard tunables.
func DefaultParams() Params {
	return Params{
		SinkChance:          0.5,
		WoodIgniteChance:    0.2,
		OilIgniteChance:     0.2,
		FireIgniteChance:    0.02,
		FireSpreadChance:    0.065,
		FireLingerChance:    0.8,
		ExplosionRadius:     64,
		ExplosionAngleStep:  0.02,
		ExplosionStepLength: 1,
	}
}

// normalized replaces geometry that would stall the explosion loops.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.ExplosionAngleStep <= 0 {
		p.ExplosionAngleStep = d.ExplosionAngleStep
	}
	if p.ExplosionStepLength <= 0 {
		p.ExplosionStepLength = d.ExplosionStepLength
	}
	if p.ExplosionRadius < 0 {
		p.ExplosionRadius = 0
	}
	return p
}

type floatField struct {
	key   string
	label string
	ptr   *float64

	min, max float64
	step     float64
}

// floatFields lists every float tunable with its key and HUD bounds.
func (p *Params) floatFields() []floatField {
	return []floatField{
		{key: "sink_chance", label: "Sink chance", ptr: &p.SinkChance, min: 0, max: 1, step: 0.05},
		{key: "wood_ignite_chance", label: "Wood ignite chance", ptr: &p.WoodIgniteChance, min: 0, max: 1, step: 0.05},
		{key: "oil_ignite_chance", label: "Oil ignite chance", ptr: &p.OilIgniteChance, min: 0, max: 1, step: 0.05},
		{key: "fire_ignite_chance", label: "Fire ignite chance", ptr: &p.FireIgniteChance, min: 0, max: 1, step: 0.005},
		{key: "fire_spread_chance", label: "Fire spread chance", ptr: &p.FireSpreadChance, min: 0, max: 1, step: 0.005},
		{key: "fire_linger_chance", label: "Fire linger chance", ptr: &p.FireLingerChance, min: 0, max: 1, step: 0.05},
		{key: "explosion_radius", label: "Explosion radius", ptr: &p.ExplosionRadius, min: 0, max: 256, step: 4},
		{key: "explosion_angle_step", label: "Explosion angle step", ptr: &p.ExplosionAngleStep, min: 0.005, max: 0.5, step: 0.005},
		{key: "explosion_step_length", label: "Explosion step length", ptr: &p.ExplosionStepLength, min: 0.25, max: 4, step: 0.25},
	}
}

// Scene names accepted by Config.Scene.
const (
	SceneEmpty   = "empty"
	SceneBox     = "box"
	SceneTerrain = "terrain"
)

// Config controls the sand world.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene string

	// FullScan disables the eligibility optimization.
	FullScan bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		Scene:  SceneEmpty,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if scene := strings.ToLower(strings.TrimSpace(v)); validScene(scene) {
			c.Scene = scene
		}
	}
	if v, ok := cfg["full_scan"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.FullScan = parsed
		}
	}
	for _, f := range c.Params.floatFields() {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= f.min && parsed <= f.max {
			*f.ptr = parsed
		}
	}
	return c
}

func validScene(name string) bool {
	switch name {
	case SceneEmpty, SceneBox, SceneTerrain:
		return true
	}
	return false
}
