package ga

import (
	"math/rand"
)

// SampleSubset draws a genotype of length n with exactly k positions
// set, chosen uniformly at random without replacement. Every sampled
// genotype is feasible by construction.
func SampleSubset(n, k int, rng *rand.Rand) Genotype {
	g := make(Genotype, n)
	for _, idx := range rng.Perm(n)[:k] {
		g[idx] = true
	}
	return g
}
