// Package random abstracts the randomness the engagement mechanics use
// (dice rolls, top-5 picks, good-deed probability) so tests can pin
// outcomes with a stub.
package random

import "math/rand"

type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type source struct {
	rng *rand.Rand
}

// New returns a Source seeded from the default generator.
func New() Source {
	return &source{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSeeded returns a deterministic Source for tests.
func NewSeeded(seed int64) Source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

func (s *source) Intn(n int) int   { return s.rng.Intn(n) }
func (s *source) Float64() float64 { return s.rng.Float64() }
