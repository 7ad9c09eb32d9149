package ga

import (
	"fmt"
	"math/rand"
)

// Selection picks two parents from the population for one mating
type Selection func(pop *Population, rng *rand.Rand) (*Individual, *Individual)

// UniformSelection picks two parents uniformly at random with
// replacement, independent of fitness
func UniformSelection(pop *Population, rng *rand.Rand) (*Individual, *Individual) {
	a := pop.Individuals[rng.Intn(pop.Size())]
	b := pop.Individuals[rng.Intn(pop.Size())]
	return a, b
}

// TournamentSelection picks each parent as the winner of a binary
// tournament, comparing by constraint violation then objective
func TournamentSelection(pop *Population, rng *rand.Rand) (*Individual, *Individual) {
	return tournamentPick(pop, rng), tournamentPick(pop, rng)
}

func tournamentPick(pop *Population, rng *rand.Rand) *Individual {
	a := pop.Individuals[rng.Intn(pop.Size())]
	b := pop.Individuals[rng.Intn(pop.Size())]
	if BetterRank(b, a) {
		return b
	}
	return a
}

// SelectionByName resolves a selection policy from its config name
func SelectionByName(name string) (Selection, error) {
	switch name {
	case "uniform":
		return UniformSelection, nil
	case "tournament":
		return TournamentSelection, nil
	default:
		return nil, fmt.Errorf("unknown selection policy %q", name)
	}
}
