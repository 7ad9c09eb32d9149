package ga

import (
	"math/rand"
)

// SwapMutation returns a copy of g with one random selected position
// cleared and one random unselected position set, leaving the popcount
// unchanged. If the genotype is all true or all false there is nothing
// to swap; the copy is returned untouched and the second return value
// is false so callers can count the no-op.
func SwapMutation(g Genotype, rng *rand.Rand) (Genotype, bool) {
	out := g.Clone()

	var ones, zeros []int
	for i, b := range out {
		if b {
			ones = append(ones, i)
		} else {
			zeros = append(zeros, i)
		}
	}

	if len(ones) == 0 || len(zeros) == 0 {
		return out, false
	}

	out[zeros[rng.Intn(len(zeros))]] = true
	out[ones[rng.Intn(len(ones))]] = false
	return out, true
}
