package ga

// EliminateDuplicates filters offspring down to those whose genotype
// matches neither an earlier offspring nor any individual already in
// the population. Comparison is exact bitwise equality. Duplicates are
// dropped rather than resampled, so the merged population can shrink
// for one generation.
func EliminateDuplicates(offspring []*Individual, pop *Population) []*Individual {
	seen := make(map[string]struct{}, len(offspring))
	if pop != nil {
		for _, ind := range pop.Individuals {
			seen[ind.Genotype.Key()] = struct{}{}
		}
	}

	unique := make([]*Individual, 0, len(offspring))
	for _, ind := range offspring {
		key := ind.Genotype.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ind)
	}
	return unique
}
