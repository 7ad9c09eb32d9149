package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"subsetga/internal/config"
)

func baseConfig(values []float64, k int) *config.Config {
	return &config.Config{
		Seed:   1337,
		Values: values,
		GA: config.GAConfig{
			Cardinality: k,
			Population:  100,
			Generations: 60,
			Selection:   "uniform",
			Workers:     1,
		},
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := baseConfig([]float64{1, 2, 3}, 2)
	cfg.GA.Population = 1
	_, err := New(cfg)
	require.Error(t, err)

	cfg = baseConfig([]float64{1, 2, 3}, 9)
	_, err = New(cfg)
	require.Error(t, err)
}

func TestRunSelectsEverythingWhenCardinalityIsFull(t *testing.T) {
	values := []float64{5, 9, 12, 31, 36, 37, 47, 52, 68, 99}
	cfg := baseConfig(values, 10)
	cfg.GA.Population = 10
	cfg.GA.Generations = 5

	eng, err := New(cfg)
	require.NoError(t, err)

	res, err := eng.Run()
	require.NoError(t, err)

	require.True(t, res.Best.Feasible())
	require.Equal(t, 396.0, res.Best.F)
	require.Equal(t, 10, res.Best.Genotype.Popcount())
	for i, b := range res.Best.Genotype {
		require.True(t, b, "candidate %d must be selected", i)
	}
}

func TestRunConvergesOnSeededBenchmark(t *testing.T) {
	// 100 seeded random ints, pick the cheapest 10
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(rng.Intn(100) + 1)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	optimum := 0.0
	for _, v := range sorted[:10] {
		optimum += v
	}

	cfg := baseConfig(values, 10)
	eng, err := New(cfg)
	require.NoError(t, err)
	eng.SaveHistory = true

	res, err := eng.Run()
	require.NoError(t, err)

	require.Equal(t, 60, res.Generations)
	require.True(t, res.Best.Feasible())
	require.LessOrEqual(t, res.Best.F, optimum*1.3,
		"best F %.1f too far from the sort-based optimum %.1f", res.Best.F, optimum)

	require.Len(t, res.History, 60)
	first, last := res.History[0], res.History[59]
	require.Less(t, last.FAvg, first.FAvg, "population average must improve over the run")
	require.LessOrEqual(t, last.FOpt, first.FOpt)
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(rng.Intn(50) + 1)
	}

	run := func() *Result {
		cfg := baseConfig(values, 5)
		cfg.GA.Generations = 20
		cfg.GA.Workers = 4
		eng, err := New(cfg)
		require.NoError(t, err)
		eng.SaveHistory = true
		res, err := eng.Run()
		require.NoError(t, err)
		return res
	}

	a := run()
	b := run()

	require.True(t, a.Best.Genotype.Equal(b.Best.Genotype))
	require.Equal(t, a.Best.F, b.Best.F)
	require.Equal(t, a.Evaluations, b.Evaluations)
	for i := range a.History {
		require.Equal(t, a.History[i], b.History[i])
	}
}

func TestRunTournamentPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(rng.Intn(100) + 1)
	}

	cfg := baseConfig(values, 8)
	cfg.GA.Selection = "tournament"
	cfg.GA.Generations = 30

	eng, err := New(cfg)
	require.NoError(t, err)

	res, err := eng.Run()
	require.NoError(t, err)
	require.True(t, res.Best.Feasible())
	require.Equal(t, 8, res.Best.Genotype.Popcount())
}

func TestRunInvokesCallbackPerGeneration(t *testing.T) {
	cfg := baseConfig([]float64{4, 8, 15, 16, 23, 42}, 3)
	cfg.GA.Population = 20
	cfg.GA.Generations = 10

	eng, err := New(cfg)
	require.NoError(t, err)

	var gens []int
	eng.Callback = func(s GenerationStats) {
		gens = append(gens, s.Generation)
	}

	_, err = eng.Run()
	require.NoError(t, err)

	require.Len(t, gens, 10)
	for i, g := range gens {
		require.Equal(t, i+1, g)
	}
}

func TestRunCountsMutationNoops(t *testing.T) {
	// k equals n, so every offspring genotype is all true and every
	// mutation is a no-op
	cfg := baseConfig([]float64{1, 2, 3}, 3)
	cfg.GA.Population = 4
	cfg.GA.Generations = 5

	eng, err := New(cfg)
	require.NoError(t, err)

	res, err := eng.Run()
	require.NoError(t, err)

	// 4 offspring per generation for 4 mating generations
	require.Equal(t, 16, res.MutationNoops)
	require.Equal(t, 6.0, res.Best.F)
}
