package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64     `yaml:"seed"`
	Values  []float64 `yaml:"values"`
	GA      GAConfig  `yaml:"ga"`
	Logging LogConfig `yaml:"logging"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Cardinality int    `yaml:"cardinality"`
	Population  int    `yaml:"population"`
	Generations int    `yaml:"generations"`
	Selection   string `yaml:"selection"` // uniform|tournament
	Workers     int    `yaml:"workers"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
	ResultPath      string `yaml:"result_path"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 100
	}
	if cfg.GA.Generations == 0 {
		cfg.GA.Generations = 60
	}
	if cfg.GA.Selection == "" {
		cfg.GA.Selection = "uniform"
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.ResultPath == "" {
		cfg.Logging.ResultPath = "artifacts/result.json"
	}
}

// Validate checks the configuration before any evaluation happens.
// A failed check aborts the run with no partial results.
func (c *Config) Validate() error {
	if len(c.Values) == 0 {
		return fmt.Errorf("config: values must not be empty")
	}
	if c.GA.Cardinality < 0 {
		return fmt.Errorf("config: cardinality %d is negative", c.GA.Cardinality)
	}
	if c.GA.Cardinality > len(c.Values) {
		return fmt.Errorf("config: cardinality %d exceeds %d candidates", c.GA.Cardinality, len(c.Values))
	}
	if c.GA.Population < 2 {
		return fmt.Errorf("config: population %d is below the minimum of 2", c.GA.Population)
	}
	if c.GA.Generations < 1 {
		return fmt.Errorf("config: generations %d is below the minimum of 1", c.GA.Generations)
	}
	if c.GA.Workers < 0 {
		return fmt.Errorf("config: workers %d is negative", c.GA.Workers)
	}
	switch c.GA.Selection {
	case "uniform", "tournament":
	default:
		return fmt.Errorf("config: unknown selection policy %q", c.GA.Selection)
	}
	return nil
}
