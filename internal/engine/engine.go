package engine

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"subsetga/internal/config"
	"subsetga/internal/ga"
	"subsetga/internal/problem"
)

// GenerationStats summarizes one generation for logging and history
type GenerationStats struct {
	Generation  int     `json:"generation"`
	Evaluations int     `json:"n_eval"`
	CVMin       float64 `json:"cv_min"`
	CVAvg       float64 `json:"cv_avg"`
	FAvg        float64 `json:"f_avg"`
	FOpt        float64 `json:"f_opt"`
}

// Result is the outcome of a full run
type Result struct {
	Best          *ga.Individual
	Generations   int
	Evaluations   int
	MutationNoops int
	ExecTime      time.Duration
	History       []GenerationStats
}

// Engine owns the generational loop. Operators receive the population
// read-only and return fresh individuals; the engine is the only owner
// of the population between generations.
type Engine struct {
	prob        *problem.SubsetSum
	popSize     int
	generations int
	workers     int
	selectMates ga.Selection
	rng         *rand.Rand

	mutationNoops int

	// Callback, when set, receives the stats of every generation
	Callback func(GenerationStats)
	// SaveHistory retains per-generation stats on the Result
	SaveHistory bool
}

// New builds an engine from a validated configuration
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prob, err := problem.New(cfg.Values, cfg.GA.Cardinality)
	if err != nil {
		return nil, err
	}

	selectMates, err := ga.SelectionByName(cfg.GA.Selection)
	if err != nil {
		return nil, err
	}

	workers := cfg.GA.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Engine{
		prob:        prob,
		popSize:     cfg.GA.Population,
		generations: cfg.GA.Generations,
		workers:     workers,
		selectMates: selectMates,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run executes the full generational loop and returns the best
// individual found. Evaluation errors abort the run with no partial
// result.
func (e *Engine) Run() (*Result, error) {
	start := time.Now()

	e.mutationNoops = 0
	res := &Result{}

	// initial population is feasible by construction
	pop := ga.NewPopulation(e.popSize, e.prob.N(), e.prob.K(), e.rng)
	if err := e.evaluate(pop.Individuals); err != nil {
		return nil, err
	}
	res.Evaluations = pop.Size()
	res.Generations = 1
	res.Best = pop.Best().Clone()
	e.record(res, pop)

	for res.Generations < e.generations {
		offspring := e.mate(pop)
		if err := e.evaluate(offspring); err != nil {
			return nil, err
		}
		res.Evaluations += len(offspring)

		offspring = ga.EliminateDuplicates(offspring, pop)
		pop = ga.Truncate(pop.Merge(offspring), e.popSize)

		res.Generations++
		if best := pop.Best(); ga.BetterRank(best, res.Best) {
			res.Best = best.Clone()
		}
		e.record(res, pop)
	}

	res.MutationNoops = e.mutationNoops
	res.ExecTime = time.Since(start)
	return res, nil
}

// mate produces one offspring per population slot: select a pair,
// cross, then swap-mutate. All random draws come from the engine's
// single rng in a fixed order, keeping runs reproducible.
func (e *Engine) mate(pop *ga.Population) []*ga.Individual {
	offspring := make([]*ga.Individual, 0, e.popSize)
	for i := 0; i < e.popSize; i++ {
		a, b := e.selectMates(pop, e.rng)
		child := ga.SubsetCrossover(a.Genotype, b.Genotype, e.prob.K(), e.rng)
		mutated, ok := ga.SwapMutation(child, e.rng)
		if !ok {
			// all-true or all-false genotype, nothing to swap
			e.mutationNoops++
		}
		offspring = append(offspring, &ga.Individual{Genotype: mutated})
	}
	return offspring
}

// evaluate scores individuals in place, splitting the batch across
// workers. Evaluation draws no randomness, so the parallel split
// cannot perturb reproducibility.
func (e *Engine) evaluate(inds []*ga.Individual) error {
	chunk := (len(inds) + e.workers - 1) / e.workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	errs := make([]error, 0)
	var mu sync.Mutex

	for lo := 0; lo < len(inds); lo += chunk {
		hi := lo + chunk
		if hi > len(inds) {
			hi = len(inds)
		}

		wg.Add(1)
		go func(part []*ga.Individual) {
			defer wg.Done()
			batch := make([]ga.Genotype, len(part))
			for i, ind := range part {
				batch[i] = ind.Genotype
			}
			results, err := e.prob.Evaluate(batch)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			for i, r := range results {
				part[i].F = r.F
				part[i].CV = r.CV
			}
		}(inds[lo:hi])
	}
	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("evaluating population: %w", errs[0])
	}
	return nil
}

// record computes generation stats and feeds callback and history
func (e *Engine) record(res *Result, pop *ga.Population) {
	if e.Callback == nil && !e.SaveHistory {
		return
	}

	fs := make([]float64, pop.Size())
	cvs := make([]float64, pop.Size())
	cvMin := pop.Individuals[0].CV
	for i, ind := range pop.Individuals {
		fs[i] = ind.F
		cvs[i] = ind.CV
		if ind.CV < cvMin {
			cvMin = ind.CV
		}
	}

	s := GenerationStats{
		Generation:  res.Generations,
		Evaluations: res.Evaluations,
		CVMin:       cvMin,
		CVAvg:       stat.Mean(cvs, nil),
		FAvg:        stat.Mean(fs, nil),
		FOpt:        res.Best.F,
	}

	if e.SaveHistory {
		res.History = append(res.History, s)
	}
	if e.Callback != nil {
		e.Callback(s)
	}
}
