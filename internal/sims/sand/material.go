package sand

import "strings"

// Material is the state of a single cell.
type Material uint8

const (
	Air Material = iota
	Sand
	Water
	Wall
	Wood
	Fire
	Oil
	Acid
	Lava
	Stone
	Explosive
	// Explosion only exists as a registry entry and a transient marker.
	Explosion
	// OutOfBounds is returned for coordinates outside the grid. It is never stored.
	OutOfBounds

	// NumMaterials counts every Material including the sentinel.
	NumMaterials = int(OutOfBounds) + 1
)

var materialNames = [NumMaterials]string{
	Air:         "air",
	Sand:        "sand",
	Water:       "water",
	Wall:        "wall",
	Wood:        "wood",
	Fire:        "fire",
	Oil:         "oil",
	Acid:        "acid",
	Lava:        "lava",
	Stone:       "stone",
	Explosive:   "explosive",
	Explosion:   "explosion",
	OutOfBounds: "out_of_bounds",
}

// String returns the lowercase material name.
func (m Material) String() string {
	if int(m) < NumMaterials {
		return materialNames[m]
	}
	return "unknown"
}

// Valid reports whether m may be stored in a grid.
func (m Material) Valid() bool { return m < OutOfBounds }

// ParseMaterial resolves a case-insensitive material name.
func ParseMaterial(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), true
		}
	}
	return Air, false
}

// MenuOrder lists the paintable materials in menu order.
var MenuOrder = []Material{Sand, Water, Wall, Wood, Fire, Oil, Acid, Lava, Stone, Explosive, Air}

// MaterialSet is a bitset over Material.
type MaterialSet uint16

// SetOf builds a set containing ms.
func SetOf(ms ...Material) MaterialSet {
	var s MaterialSet
	for _, m := range ms {
		s = s.With(m)
	}
	return s
}

// With returns s with m added.
func (s MaterialSet) With(m Material) MaterialSet { return s | 1<<m }

// Has reports whether m is in s.
func (s MaterialSet) Has(m Material) bool { return s&(1<<m) != 0 }

// Union returns the materials present in either set.
func (s MaterialSet) Union(o MaterialSet) MaterialSet { return s | o }

// Materials lists the members of s in enum order.
func (s MaterialSet) Materials() []Material {
	var out []Material
	for m := Material(0); int(m) < NumMaterials; m++ {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}
