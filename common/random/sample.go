package random

import (
	"fmt"
	"math/rand"
)

// Sample draws one key from a discrete distribution. The weights must
// form a probability distribution within a small tolerance.
func Sample[K comparable](rng *rand.Rand, probs map[K]float64) (K, error) {
	type entry struct {
		val  K
		prob float64
	}
	var zero K
	var entries []entry
	sum := 0.0

	for val, prob := range probs {
		entries = append(entries, entry{val, prob})
		sum += prob
	}

	if sum < 0.95 || sum > 1.05 {
		return zero, fmt.Errorf("invalid probs sum %.4f != 1", sum)
	}
	r := rng.Float64() * sum
	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.prob
		if r < cumulative {
			return e.val, nil
		}
	}

	return entries[len(entries)-1].val, nil
}
