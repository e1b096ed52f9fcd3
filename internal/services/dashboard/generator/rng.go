package generator

import (
	"math/rand"

	"github.com/louisbranch/userdash/internal/random"
)

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, a seed is drawn from crypto/rand and returned.
func NewSeededRNG(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		drawn, err := random.NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = drawn
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
