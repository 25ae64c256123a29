package stage

import (
	"math/rand"
	"time"
)

// Random is the default RandomSource, a seeded math/rand generator so a run
// can be replayed with the same -seed.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a generator seeded with seed, or with the current time
// when seed is 0.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Uint32() uint32 {
	return r.rng.Uint32()
}
