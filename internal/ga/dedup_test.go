package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEliminateDuplicatesWithinOffspring(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	g := SampleSubset(12, 4, rng)
	other := SampleSubset(12, 4, rng)
	for other.Equal(g) {
		other = SampleSubset(12, 4, rng)
	}

	offspring := []*Individual{
		{Genotype: g},
		{Genotype: g.Clone()},
		{Genotype: other},
		{Genotype: g.Clone()},
	}

	unique := EliminateDuplicates(offspring, &Population{})
	require.Len(t, unique, 2)
	require.True(t, unique[0].Genotype.Equal(g))
	require.True(t, unique[1].Genotype.Equal(other))
}

func TestEliminateDuplicatesAgainstPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(32))

	existing := SampleSubset(12, 4, rng)
	fresh := SampleSubset(12, 4, rng)
	for fresh.Equal(existing) {
		fresh = SampleSubset(12, 4, rng)
	}

	pop := &Population{Individuals: []*Individual{{Genotype: existing}}}
	offspring := []*Individual{
		{Genotype: existing.Clone()},
		{Genotype: fresh},
	}

	unique := EliminateDuplicates(offspring, pop)
	require.Len(t, unique, 1)
	require.True(t, unique[0].Genotype.Equal(fresh))
}

func TestGenotypeKeyMatchesEquality(t *testing.T) {
	rng := rand.New(rand.NewSource(33))

	for i := 0; i < 100; i++ {
		a := SampleSubset(17, 5, rng)
		b := SampleSubset(17, 5, rng)
		require.Equal(t, a.Equal(b), a.Key() == b.Key())
	}

	g := SampleSubset(17, 5, rng)
	require.Equal(t, g.Key(), g.Clone().Key())
}
