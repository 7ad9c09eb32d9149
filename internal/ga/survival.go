package ga

// Truncate selects the best size individuals from the population by
// rank: lower constraint violation first, lower objective among equals.
// Remaining ties keep their original order, so the result is
// deterministic under a fixed seed.
func Truncate(pop *Population, size int) *Population {
	pop.SortByRank()
	if size > pop.Size() {
		size = pop.Size()
	}
	survivors := make([]*Individual, size)
	copy(survivors, pop.Individuals[:size])
	return &Population{Individuals: survivors}
}
