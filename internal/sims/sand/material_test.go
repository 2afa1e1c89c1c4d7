package sand

import (
	"slices"
	"testing"
)

func TestParseMaterialRoundTrip(t *testing.T) {
	for m := Material(0); int(m) < NumMaterials; m++ {
		got, ok := ParseMaterial(m.String())
		if !ok || got != m {
			t.Fatalf("ParseMaterial(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if got, ok := ParseMaterial("  LAVA "); !ok || got != Lava {
		t.Fatalf("expected case-insensitive lava, got %v %v", got, ok)
	}
	if _, ok := ParseMaterial("plasma"); ok {
		t.Fatal("unexpected match for unknown material")
	}
	if Material(200).String() != "unknown" {
		t.Fatal("expected unknown name for out-of-range material")
	}
}

func TestMaterialSet(t *testing.T) {
	s := SetOf(Water, Lava)
	if !s.Has(Water) || !s.Has(Lava) || s.Has(Air) {
		t.Fatalf("unexpected membership for %b", s)
	}
	u := s.Union(SetOf(Air))
	if !slices.Equal(u.Materials(), []Material{Air, Water, Lava}) {
		t.Fatalf("Materials() = %v", u.Materials())
	}
	if OutOfBounds.Valid() || !Explosion.Valid() {
		t.Fatal("only the sentinel should be invalid")
	}
}
