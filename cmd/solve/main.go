package main

import (
	"flag"
	"fmt"
	"os"

	"subsetga/internal/config"
	"subsetga/internal/engine"
	"subsetga/internal/logging"
)

func main() {
	configPath := flag.String("config", "configs/subset.yaml", "path to config file")
	generations := flag.Int("generations", 0, "override generation budget from config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *generations > 0 {
		cfg.GA.Generations = *generations
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subset GA - %d candidates, cardinality %d\n", len(cfg.Values), cfg.GA.Cardinality)
	fmt.Printf("Config: %s\n", *configPath)
	fmt.Printf("Population: %d, Generations: %d, Selection: %s, Seed: %d\n",
		cfg.GA.Population, cfg.GA.Generations, cfg.GA.Selection, cfg.Seed)
	fmt.Println("---")

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if cfg.Logging.EveryGenSummary {
		eng.Callback = logger.LogGeneration
	}

	res, err := eng.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("---")
	fmt.Printf("Done: %d generations, %d evaluations in %v\n",
		res.Generations, res.Evaluations, res.ExecTime)
	if res.Best.Feasible() {
		fmt.Printf("Best: F=%.4f, selected %v\n", res.Best.F, res.Best.Genotype.Indices())
	} else {
		fmt.Printf("No feasible solution found; least infeasible: F=%.4f, CV=%.4f\n",
			res.Best.F, res.Best.CV)
	}

	if err := logging.SaveResult(cfg.Logging.ResultPath, res); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save result: %v\n", err)
	}
}
