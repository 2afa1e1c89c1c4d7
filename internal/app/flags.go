package app

import (
	"flag"
	"strconv"
	"strings"
)

// Brush radius limits for painting.
const (
	MinBrush = 1
	MaxBrush = 64
)

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 260

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Scene    string
	Brush    int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    400,
		Height:   300,
		Scale:    2,
		TPS:      60,
		Seed:     1337,
		Scene:    "box",
		Brush:    6,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene: empty, box or terrain")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Normalize clamps values that would break the window or the brush.
func (c *Config) Normalize() {
	d := NewConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	c.Scene = strings.ToLower(strings.TrimSpace(c.Scene))
	c.Brush = ClampBrush(c.Brush)
}

// SimConfig returns the factory options for the sand world.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
	}
}

// ClampBrush limits r to [MinBrush, MaxBrush].
func ClampBrush(r int) int {
	return min(max(r, MinBrush), MaxBrush)
}
