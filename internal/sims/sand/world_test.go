package sand

import (
	"bytes"
	"testing"

	"sandfall/internal/core"
)

func terrainWorld(seed int64) *World {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 80, 60
	cfg.Seed = seed
	cfg.Scene = SceneTerrain
	return NewWithConfig(cfg)
}

func TestResetIsDeterministic(t *testing.T) {
	a, b := terrainWorld(1), terrainWorld(1)
	a.Reset(21)
	b.Reset(21)
	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds produced different grids")
	}
	if a.Frame() != 50 {
		t.Fatalf("frame = %d, want 50", a.Frame())
	}
}

func TestResetSeedsDiffer(t *testing.T) {
	a, b := terrainWorld(1), terrainWorld(1)
	a.Reset(1)
	b.Reset(2)
	if bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestResetZeroUsesConfiguredSeed(t *testing.T) {
	a, b := terrainWorld(77), terrainWorld(77)
	a.Reset(0)
	b.Reset(77)
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset(0) should fall back to the configured seed")
	}
}

func TestResetClearsPaint(t *testing.T) {
	w := New(16, 12)
	w.Reset(3)
	w.Place(Sand, 8, 6, 3)
	w.Step()
	w.Reset(3)
	if got := w.Grid().Count(Air); got != 16*12 {
		t.Fatalf("empty scene after reset has %d air cells", got)
	}
	if w.Frame() != 0 {
		t.Fatal("reset should rewind the frame counter")
	}
}

func TestBoxSceneIsEnclosed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 60, 40
	cfg.Scene = SceneBox
	w := NewWithConfig(cfg)
	w.Reset(0)
	g := w.Grid()
	for x := 0; x < 60; x++ {
		if g.Get(x, 39) != Wall {
			t.Fatalf("floor missing at x=%d", x)
		}
	}
	for y := 0; y < 40; y++ {
		if g.Get(0, y) != Wall || g.Get(59, y) != Wall {
			t.Fatalf("side wall missing at y=%d", y)
		}
	}
	census := g.Census()
	for _, m := range []Material{Sand, Water, Wood, Oil} {
		if census[m] == 0 {
			t.Fatalf("box scene has no %v", m)
		}
	}
}

func TestTerrainSceneLayers(t *testing.T) {
	w := terrainWorld(5)
	w.Reset(0)
	g := w.Grid()
	census := g.Census()
	if census[Stone] == 0 || census[Sand] == 0 {
		t.Fatalf("terrain missing rock or crust: %v", census)
	}
	for x := 0; x < g.Width(); x++ {
		if g.Get(x, 0) != Air {
			t.Fatalf("top row should be sky at x=%d", x)
		}
		if g.Get(x, g.Height()-1) != Wall {
			t.Fatalf("bottom row should be wall at x=%d", x)
		}
	}
}

func TestFactoryRegistered(t *testing.T) {
	f, ok := core.Sims()["sand"]
	if !ok {
		t.Fatal("sand factory not registered")
	}
	sim := f(map[string]string{"w": "10", "h": "8"})
	if sim.Name() != "sand" {
		t.Fatalf("name = %q", sim.Name())
	}
	if got := sim.Size(); got != (core.Size{W: 10, H: 8}) {
		t.Fatalf("size = %+v", got)
	}
	if len(sim.Cells()) != 80 {
		t.Fatalf("cells = %d, want 80", len(sim.Cells()))
	}
	if _, ok := sim.(core.Painter); !ok {
		t.Fatal("sand world should accept painting")
	}
	if _, ok := sim.(core.PaletteProvider); !ok {
		t.Fatal("sand world should provide a palette")
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		t.Fatal("sand world should expose parameters")
	}
}

func TestBrushesAndPaint(t *testing.T) {
	w := New(10, 10)
	brushes := w.Brushes()
	if len(brushes) != len(MenuOrder) {
		t.Fatalf("brush count %d, want %d", len(brushes), len(MenuOrder))
	}
	if brushes[0].Name != "sand" || brushes[len(brushes)-1].Value != uint8(Air) {
		t.Fatalf("unexpected brush order: %+v", brushes)
	}
	w.Paint(uint8(Water), 5, 5, 2)
	if w.Grid().Get(5, 5) != Water {
		t.Fatal("paint did not reach the grid")
	}
	w.Paint(uint8(OutOfBounds), 5, 5, 2)
	if w.Grid().Get(5, 5) != Water {
		t.Fatal("sentinel paint must be ignored")
	}
}

func TestPalette(t *testing.T) {
	w := New(2, 2)
	p := w.Palette()
	if len(p) != NumMaterials {
		t.Fatalf("palette has %d entries, want %d", len(p), NumMaterials)
	}
	if p[Air] == p[Sand] || p[Water] == p[Acid] {
		t.Fatal("materials should be distinguishable")
	}
	if Color(Material(200)) != p[OutOfBounds] {
		t.Fatal("unknown materials should use the sentinel color")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	w := New(4, 4)
	if !w.SetFloatParameter("sink_chance", 3) {
		t.Fatal("sink_chance should be adjustable")
	}
	if got := w.Engine().Params().SinkChance; got != 1 {
		t.Fatalf("sink_chance = %v, want clamp to 1", got)
	}
	if w.SetFloatParameter("gravity", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	p, ok := w.Parameters().Lookup("sink_chance")
	if !ok || p.Value != "1" {
		t.Fatalf("snapshot sink_chance = %+v, %v", p, ok)
	}
	if len(w.ParameterControls()) != 9 {
		t.Fatalf("expected 9 controls, got %d", len(w.ParameterControls()))
	}
}

func TestParametersReportFrame(t *testing.T) {
	w := New(4, 4)
	w.Reset(1)
	w.Step()
	w.Step()
	p, ok := w.Parameters().Lookup("frame")
	if !ok || p.Value != "2" {
		t.Fatalf("frame parameter = %+v, %v", p, ok)
	}
}
