package sim

import "math/rand"

// Source supplies the randomness used for obstacle generation and skin
// selection. Implementations must be deterministic for a given seed.
type Source interface {
	// IntRange returns a uniform integer in [min, max]. If max <= min it returns min.
	IntRange(min, max int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand seeded with seed.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
