package game

import "math/rand/v2"

// Rand supplies uniform values from half-open ranges. The engine consumes it
// only during piece generation; implementations are threaded in explicitly so
// tests can substitute a seeded or scripted source. A Rand is not safe for
// concurrent use unless its implementation says otherwise.
type Rand interface {
	// IntN returns a uniform integer in [lower, upper).
	IntN(lower, upper int) int
	// Float64 returns a uniform float in [lower, upper).
	Float64(lower, upper float64) float64
}

// Source is the default Rand, backed by a seedable PCG generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source from an explicit seed pair. The same seeds
// always yield the same value stream.
func NewSource(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewRandomSource creates a Source seeded from the process-global generator.
func NewRandomSource() *Source {
	return NewSource(rand.Uint64(), rand.Uint64())
}

func (s *Source) IntN(lower, upper int) int {
	return lower + s.rng.IntN(upper-lower)
}

func (s *Source) Float64(lower, upper float64) float64 {
	return lower + s.rng.Float64()*(upper-lower)
}
