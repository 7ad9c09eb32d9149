package ga

import (
	"math/rand"
)

// SubsetCrossover combines two parents into one child genotype.
// Positions selected by both parents are kept unconditionally; the
// remaining k - |agreement| slots are filled uniformly at random
// without replacement from positions selected by exactly one parent.
//
// When the parents already agree on more than k positions the child
// keeps the whole agreement set and exceeds k; when the symmetric
// difference is too small the child falls short of k. Neither case is
// repaired here — the constraint ranking at survival handles both.
func SubsetCrossover(p1, p2 Genotype, k int, rng *rand.Rand) Genotype {
	n := len(p1)
	child := make(Genotype, n)

	agreement := 0
	var diff []int
	for i := 0; i < n; i++ {
		switch {
		case p1[i] && p2[i]:
			child[i] = true
			agreement++
		case p1[i] != p2[i]:
			diff = append(diff, i)
		}
	}

	r := k - agreement
	if r <= 0 {
		return child
	}
	if r > len(diff) {
		r = len(diff)
	}

	rng.Shuffle(len(diff), func(i, j int) {
		diff[i], diff[j] = diff[j], diff[i]
	})
	for _, idx := range diff[:r] {
		child[idx] = true
	}

	return child
}
