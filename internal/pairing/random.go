package pairing

import (
	"math/rand"
	"time"
)

// RandomSource is every source of randomness a run uses. *rand.Rand
// satisfies it.
type RandomSource interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandomSource returns a seeded source. Seed 0 seeds from the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
