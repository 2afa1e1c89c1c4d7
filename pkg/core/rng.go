package core

import "math/rand/v2"

// Source is the randomness consumed by the simulations. Implementations need
// not be safe for concurrent use unless documented otherwise.
type Source interface {
	Bool() bool
	Float64() float64
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

type globalSource struct{}

func (globalSource) Bool() bool       { return rand.IntN(2) == 1 }
func (globalSource) Float64() float64 { return rand.Float64() }

func (globalSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// Global returns a Source backed by the process-wide math/rand/v2 generator.
// It is safe for concurrent use but not reproducible.
func Global() Source { return globalSource{} }
