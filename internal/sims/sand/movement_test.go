package sand

import (
	"testing"

	pcore "sandfall/pkg/core"
)

func TestGravityReachesBottomInExactlyHTicks(t *testing.T) {
	const airBelow = 9
	for _, width := range []int{1, 3} {
		g := NewGrid(width, airBelow+1)
		x := width / 2
		g.Set(x, 0, Sand)
		e := newTestEngine(pcore.NewRNG(5))
		for tick := 0; tick < airBelow; tick++ {
			if g.Get(x, g.Height()-1) == Sand {
				t.Fatalf("width %d: sand reached the bottom early, after %d ticks", width, tick)
			}
			e.Step(g, uint64(tick))
			if got := g.Get(x, tick+1); got != Sand {
				t.Fatalf("width %d: after tick %d expected sand at row %d, got %v", width, tick, tick+1, got)
			}
		}
		if g.Count(Sand) != 1 {
			t.Fatalf("width %d: sand count %d", width, g.Count(Sand))
		}
	}
}

func TestLavaOverWaterBecomesStone(t *testing.T) {
	g := gridFrom(
		"l",
		"w",
	)
	newTestEngine(pcore.NewRNG(1)).Step(g, 0)
	if got := g.Get(0, 1); got != Stone {
		t.Fatalf("water cell became %v, want stone", got)
	}
	if got := g.Get(0, 0); got != Air {
		t.Fatalf("lava cell became %v, want air", got)
	}
}

func TestSinkSwapIsProbabilistic(t *testing.T) {
	g := gridFrom(
		"w",
		"o",
	)
	newTestEngine(neverSource()).Step(g, 0)
	if g.Get(0, 0) != Water || g.Get(0, 1) != Oil {
		t.Fatal("a failed sink draw must leave both cells in place")
	}
	newTestEngine(alwaysSource()).Step(g, 1)
	if g.Get(0, 0) != Oil || g.Get(0, 1) != Water {
		t.Fatalf("water should sink below oil, got %v over %v", g.Get(0, 0), g.Get(0, 1))
	}
}

func TestSinkSwapAppliesTransform(t *testing.T) {
	g := gridFrom(
		"S",
		"a",
	)
	newTestEngine(alwaysSource()).Step(g, 0)
	if g.Get(0, 0) != Acid || g.Get(0, 1) != Acid {
		t.Fatalf("stone sinking in acid should dissolve, got %v over %v", g.Get(0, 0), g.Get(0, 1))
	}
}

func TestAcidDissolvesWhatItDisplaces(t *testing.T) {
	for _, target := range []Material{Sand, Wood, Stone, Fire} {
		g := NewGrid(1, 2)
		g.Set(0, 0, Acid)
		g.Set(0, 1, target)
		newTestEngine(neverSource()).Step(g, 0)
		if g.Get(0, 0) != Air || g.Get(0, 1) != Air {
			t.Fatalf("acid over %v left %v over %v", target, g.Get(0, 0), g.Get(0, 1))
		}
	}
}

func TestFallLeftRightHonorsCoinFlip(t *testing.T) {
	cases := []struct {
		preferLeft bool
		wantX      int
	}{
		{preferLeft: true, wantX: 0},
		{preferLeft: false, wantX: 2},
	}
	for _, tc := range cases {
		g := gridFrom(
			".s.",
			".#.",
		)
		newTestEngine(constSource{b: tc.preferLeft, f: 0.999}).Step(g, 0)
		if got := g.Get(tc.wantX, 1); got != Sand {
			t.Fatalf("preferLeft=%v: expected sand at (%d,1), got %v", tc.preferLeft, tc.wantX, got)
		}
		if g.Get(1, 0) != Air {
			t.Fatal("source should be cleared")
		}
	}
}

func TestFallLeftRightFallsBackToOtherSide(t *testing.T) {
	g := gridFrom(
		".s.",
		"##.",
	)
	newTestEngine(constSource{b: true, f: 0.999}).Step(g, 0)
	if g.Get(2, 1) != Sand {
		t.Fatalf("expected sand to take the free right diagonal, grid row1=%v,%v,%v", g.Get(0, 1), g.Get(1, 1), g.Get(2, 1))
	}
}

func TestLiquidOnBottomRowFlowsSideways(t *testing.T) {
	g := gridFrom(".w.")
	newTestEngine(constSource{b: false, f: 0.999}).Step(g, 0)
	if g.Get(2, 0) != Water || g.Get(1, 0) != Air {
		t.Fatalf("water should flow right, got %v %v %v", g.Get(0, 0), g.Get(1, 0), g.Get(2, 0))
	}
}

func TestLiquidPrefersFallingOverFlowing(t *testing.T) {
	g := gridFrom(
		".w.",
		"...",
	)
	newTestEngine(constSource{b: true, f: 0.999}).Step(g, 0)
	if g.Get(1, 1) != Water {
		t.Fatal("water should fall straight down first")
	}
}

func TestSettledParticleLosesEligibility(t *testing.T) {
	g := gridFrom(
		"#s#",
		"###",
	)
	e := newTestEngine(pcore.NewRNG(3))
	e.Step(g, 0)
	if g.IsEligible(1, 0) {
		t.Fatal("boxed sand should be marked ineligible")
	}
	if g.Get(1, 0) != Sand {
		t.Fatal("boxed sand must not move")
	}
	g.Set(1, 1, Air)
	if !g.IsEligible(1, 0) {
		t.Fatal("opening the floor should wake the sand")
	}
	e.Step(g, 1)
	if g.Get(1, 1) != Sand {
		t.Fatal("woken sand should fall")
	}
}

func TestPrimitivesRefuseUpdatedSource(t *testing.T) {
	g := gridFrom(
		"s",
		".",
	)
	e := newTestEngine(alwaysSource())
	props := e.Registry().Properties(Sand)
	g.MarkUpdated(0, 0)
	if e.fallDown(g, 0, 0, props) || e.fallLeftRight(g, 0, 0, props) || e.flowLeftRight(g, 0, 0, props) {
		t.Fatal("primitives must not move an updated cell")
	}
	if g.Get(0, 0) != Sand {
		t.Fatal("updated cell was moved")
	}
}
