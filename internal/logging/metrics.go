package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"subsetga/internal/engine"
	"subsetga/internal/ga"
)

// Logger handles all run output and artifact saving
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{"generation", "n_eval", "cv_min", "cv_avg", "f_avg", "f_opt"}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// LogGeneration logs one generation summary to CSV, JSONL and console
func (l *Logger) LogGeneration(s engine.GenerationStats) {
	if !l.initialized {
		return
	}

	row := []string{
		strconv.Itoa(s.Generation),
		strconv.Itoa(s.Evaluations),
		fmt.Sprintf("%.4f", s.CVMin),
		fmt.Sprintf("%.4f", s.CVAvg),
		fmt.Sprintf("%.4f", s.FAvg),
		fmt.Sprintf("%.4f", s.FOpt),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(s)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	fmt.Printf("Gen %4d | Evals: %6d | CV min: %8.4f | CV avg: %8.4f | F avg: %10.4f | F opt: %10.4f\n",
		s.Generation, s.Evaluations, s.CVMin, s.CVAvg, s.FAvg, s.FOpt)
}

// savedResult is the on-disk form of a run result
type savedResult struct {
	Generations int     `json:"generations"`
	Evaluations int     `json:"n_eval"`
	F           float64 `json:"f"`
	CV          float64 `json:"cv"`
	Genotype    []bool  `json:"genotype"`
	Selected    []int   `json:"selected"`
}

// SaveResult saves the final best individual to a JSON file
func SaveResult(path string, res *engine.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := savedResult{
		Generations: res.Generations,
		Evaluations: res.Evaluations,
		F:           res.Best.F,
		CV:          res.Best.CV,
		Genotype:    res.Best.Genotype,
		Selected:    res.Best.Genotype.Indices(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadResult loads a previously saved best individual from a file
func LoadResult(path string) (*ga.Individual, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved savedResult
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}

	return &ga.Individual{
		Genotype: ga.Genotype(saved.Genotype),
		F:        saved.F,
		CV:       saved.CV,
	}, nil
}
