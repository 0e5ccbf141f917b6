package walk

import (
	"fmt"
	"math/rand"
)

// StepLength is the displacement magnitude of a single step.
const StepLength = 1

// Walker generates symmetric ±1 random walks. Every walk draws from a
// fresh generator seeded by the walker's seed sequence, so no two walks
// share generator state and a root seed reproduces a whole session.
type Walker struct {
	seeds *SeedSequence
}

func New(seed int64) *Walker {
	return &Walker{seeds: NewSeedSequence(seed)}
}

// Final runs one walk of n steps and returns the final cumulative
// position. Intermediate positions are discarded; the result is an
// integer in [-n, n] with the parity of n.
func (w *Walker) Final(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("steps must be positive, got %d", n)
	}

	rng := rand.New(rand.NewSource(w.seeds.Next()))

	pos := 0
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			pos -= StepLength
		} else {
			pos += StepLength
		}
	}
	return pos, nil
}
