package cube

import "math/rand"

// newTestRand gives tests a deterministic scramble source so results
// are reproducible without touching the package's public Scramble,
// which always seeds from crypto-independent process entropy.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
