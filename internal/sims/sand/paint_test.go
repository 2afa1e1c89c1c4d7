package sand

import "testing"

func TestPlaceWritesStrictDisk(t *testing.T) {
	g := NewGrid(20, 20)
	n := g.Place(Sand, 10, 10, 4)
	want := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			dx, dy := x-10, y-10
			inside := dx*dx+dy*dy < 16
			if inside {
				want++
			}
			if got := g.Get(x, y) == Sand; got != inside {
				t.Fatalf("(%d,%d): sand=%v, want %v", x, y, got, inside)
			}
		}
	}
	if n != want {
		t.Fatalf("Place returned %d, want %d", n, want)
	}
	if g.Get(10, 6) == Sand || g.Get(14, 10) == Sand {
		t.Fatal("cells at exactly the radius must be excluded")
	}
}

func TestPlaceClipsAtEdges(t *testing.T) {
	g := NewGrid(6, 6)
	n := g.Place(Water, 0, 0, 3)
	// the 3x3 corner block, all within distance sqrt(8)
	if n != 9 {
		t.Fatalf("clipped disk wrote %d cells, want 9", n)
	}
	if g.Count(Water) != 9 {
		t.Fatalf("water count %d, want 9", g.Count(Water))
	}
	if got := g.Place(Water, -10, -10, 3); got != 0 {
		t.Fatalf("disk fully outside wrote %d cells", got)
	}
}

func TestPlaceRejectsBadInput(t *testing.T) {
	g := NewGrid(4, 4)
	if g.Place(Sand, 2, 2, 0) != 0 || g.Place(Sand, 2, 2, -1) != 0 {
		t.Fatal("non-positive radius must write nothing")
	}
	if g.Place(OutOfBounds, 2, 2, 2) != 0 {
		t.Fatal("the out-of-bounds sentinel is not paintable")
	}
	if g.Count(Air) != 16 {
		t.Fatal("grid changed")
	}
}

func TestPlaceWakesNeighbors(t *testing.T) {
	g := NewGrid(5, 5)
	g.Place(Sand, 2, 2, 1)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if !g.IsEligible(x, y) {
				t.Fatalf("(%d,%d) should be eligible", x, y)
			}
		}
	}
	if g.IsEligible(0, 0) {
		t.Fatal("(0,0) is outside the woken neighborhood")
	}
}

func TestFillHalfOpen(t *testing.T) {
	g := NewGrid(5, 5)
	g.Fill(Wall, 1, 1, 3, 4)
	if got := g.Count(Wall); got != 6 {
		t.Fatalf("fill wrote %d walls, want 6", got)
	}
	if g.Get(3, 1) == Wall || g.Get(1, 4) == Wall {
		t.Fatal("upper bounds are exclusive")
	}
	g.Fill(Stone, -5, -5, 100, 1)
	if got := g.Count(Stone); got != 5 {
		t.Fatalf("clipped fill wrote %d, want 5", got)
	}
}
