package core

import "math/rand/v2"

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

// FillBernoulli sets each cell alive with independent probability p.
// p <= 0 leaves every cell dead and p >= 1 sets every cell alive, so the
// extremes are exact rather than probabilistic.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	switch {
	case p <= 0:
		for i := range buf {
			buf[i] = CellDead
		}
	case p >= 1:
		for i := range buf {
			buf[i] = CellAlive
		}
	default:
		for i := range buf {
			if r.Float64() < p {
				buf[i] = CellAlive
			} else {
				buf[i] = CellDead
			}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
