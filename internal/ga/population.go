package ga

import (
	"math/rand"
	"sort"
)

// Individual represents a single evaluated solution in the population
type Individual struct {
	Genotype Genotype
	F        float64 // objective value, lower is better
	CV       float64 // constraint violation, zero when feasible
}

// Feasible reports whether the individual satisfies the cardinality constraint
func (ind *Individual) Feasible() bool {
	return ind.CV == 0
}

// Clone creates a deep copy of an individual
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Genotype: ind.Genotype.Clone(),
		F:        ind.F,
		CV:       ind.CV,
	}
}

// BetterRank reports whether a ranks strictly better than b.
// Lower constraint violation wins; among equals, lower objective wins.
func BetterRank(a, b *Individual) bool {
	if a.CV != b.CV {
		return a.CV < b.CV
	}
	return a.F < b.F
}

// Population manages the collection of individuals
type Population struct {
	Individuals []*Individual
}

// NewPopulation creates a population with k-of-n random genotypes,
// each drawn uniformly without replacement
func NewPopulation(size, n, k int, rng *rand.Rand) *Population {
	p := &Population{
		Individuals: make([]*Individual, size),
	}

	for i := 0; i < size; i++ {
		p.Individuals[i] = &Individual{
			Genotype: SampleSubset(n, k, rng),
		}
	}

	return p
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Individuals)
}

// SortByRank sorts individuals by constraint violation, then objective.
// The sort is stable so equal-ranked individuals keep their insertion
// order and runs stay reproducible under a fixed seed.
func (p *Population) SortByRank() {
	sort.SliceStable(p.Individuals, func(i, j int) bool {
		return BetterRank(p.Individuals[i], p.Individuals[j])
	})
}

// Best returns the best individual: the feasible one with the lowest
// objective, or the least infeasible one when nothing is feasible.
func (p *Population) Best() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if BetterRank(ind, best) {
			best = ind
		}
	}
	return best
}

// Merge appends other populations' individuals into a new population
func (p *Population) Merge(others ...[]*Individual) *Population {
	merged := make([]*Individual, 0, len(p.Individuals))
	merged = append(merged, p.Individuals...)
	for _, o := range others {
		merged = append(merged, o...)
	}
	return &Population{Individuals: merged}
}
