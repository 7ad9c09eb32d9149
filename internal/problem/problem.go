package problem

import (
	"fmt"

	"subsetga/internal/ga"
)

// SubsetSum scores subsets of a fixed candidate value list. The
// objective is the sum of the selected values; the constraint drives
// the selection count toward the target cardinality.
type SubsetSum struct {
	values []float64
	k      int
}

// Result holds the evaluation outcome for one genotype
type Result struct {
	F  float64 // sum of selected values
	CV float64 // squared distance from the target cardinality
}

// New creates a subset-sum problem over the given candidate values
func New(values []float64, k int) (*SubsetSum, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("problem: empty candidate list")
	}
	if k < 0 || k > len(values) {
		return nil, fmt.Errorf("problem: cardinality %d out of range [0, %d]", k, len(values))
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &SubsetSum{values: vals, k: k}, nil
}

// N returns the number of candidates
func (p *SubsetSum) N() int {
	return len(p.values)
}

// K returns the target cardinality
func (p *SubsetSum) K() int {
	return p.k
}

// Evaluate scores a batch of genotypes. Per-genotype semantics are
// identical to a batch of one. A genotype of the wrong length means an
// operator produced garbage; the whole batch fails.
func (p *SubsetSum) Evaluate(batch []ga.Genotype) ([]Result, error) {
	out := make([]Result, len(batch))
	for i, g := range batch {
		if len(g) != len(p.values) {
			return nil, fmt.Errorf("problem: genotype %d has length %d, want %d", i, len(g), len(p.values))
		}

		sum := 0.0
		count := 0
		for j, selected := range g {
			if selected {
				sum += p.values[j]
				count++
			}
		}

		miss := float64(p.k - count)
		out[i] = Result{F: sum, CV: miss * miss}
	}
	return out, nil
}

// EvaluateOne scores a single genotype as a batch of one
func (p *SubsetSum) EvaluateOne(g ga.Genotype) (Result, error) {
	res, err := p.Evaluate([]ga.Genotype{g})
	if err != nil {
		return Result{}, err
	}
	return res[0], nil
}
