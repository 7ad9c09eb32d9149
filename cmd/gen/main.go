package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"subsetga/internal/config"
)

// Emits a config with a seeded random candidate list, so benchmark
// runs are reproducible across machines.
func main() {
	n := flag.Int("n", 100, "number of candidate values")
	max := flag.Int("max", 100, "candidate values are drawn from [1, max]")
	k := flag.Int("k", 10, "target cardinality")
	seed := flag.Int64("seed", 1, "seed for the candidate values")
	out := flag.String("out", "", "output path (default stdout)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	values := make([]float64, *n)
	for i := range values {
		values[i] = float64(rng.Intn(*max) + 1)
	}

	cfg := config.Config{
		Seed:   *seed,
		Values: values,
		GA: config.GAConfig{
			Cardinality: *k,
			Population:  100,
			Generations: 60,
			Selection:   "uniform",
		},
		Logging: config.LogConfig{
			EveryGenSummary: true,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d candidates, k=%d)\n", *out, *n, *k)
}
