package app

import (
	"flag"
	"io"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	fs := flag.NewFlagSet("sandfall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)
	args := []string{"-w", "120", "-h", "80", "-scale", "4", "-seed", "9", "-scene", "Terrain", "-brush", "200", "-log-level", "debug"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg.Normalize()
	if cfg.Width != 120 || cfg.Height != 80 || cfg.Scale != 4 || cfg.Seed != 9 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Scene != "terrain" {
		t.Fatalf("scene = %q, want terrain", cfg.Scene)
	}
	if cfg.Brush != MaxBrush {
		t.Fatalf("brush = %d, want clamp to %d", cfg.Brush, MaxBrush)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestNormalizeRestoresDefaults(t *testing.T) {
	cfg := &Config{Width: -1, Height: 0, Scale: 0, TPS: -5, Brush: 0}
	cfg.Normalize()
	d := NewConfig()
	if cfg.Width != d.Width || cfg.Height != d.Height || cfg.TPS != d.TPS {
		t.Fatalf("defaults not restored: %+v", cfg)
	}
	if cfg.Scale != 1 || cfg.Brush != MinBrush {
		t.Fatalf("scale/brush not clamped: %+v", cfg)
	}
}

func TestSimConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Seed, cfg.Scene = 32, 16, -4, "empty"
	m := cfg.SimConfig()
	if m["w"] != "32" || m["h"] != "16" || m["seed"] != "-4" || m["scene"] != "empty" {
		t.Fatalf("unexpected sim config: %v", m)
	}
}

func TestClampBrush(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 30: 30, 64: 64, 65: 64} {
		if got := ClampBrush(in); got != want {
			t.Fatalf("ClampBrush(%d) = %d, want %d", in, got, want)
		}
	}
}
