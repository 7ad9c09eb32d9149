package ga

// Genotype is a fixed-length selection mask over the candidate list.
// Index i is true when candidate i is part of the subset.
type Genotype []bool

// Popcount returns the number of selected candidates
func (g Genotype) Popcount() int {
	n := 0
	for _, b := range g {
		if b {
			n++
		}
	}
	return n
}

// Clone creates a copy of the genotype
func (g Genotype) Clone() Genotype {
	out := make(Genotype, len(g))
	copy(out, g)
	return out
}

// Key packs the genotype into a compact string usable as a map key.
// Two genotypes share a key iff they are bitwise identical.
func (g Genotype) Key() string {
	buf := make([]byte, (len(g)+7)/8)
	for i, b := range g {
		if b {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	return string(buf)
}

// Equal reports whether two genotypes select the same subset
func (g Genotype) Equal(other Genotype) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// Indices returns the positions of the selected candidates in order
func (g Genotype) Indices() []int {
	out := make([]int, 0, g.Popcount())
	for i, b := range g {
		if b {
			out = append(out, i)
		}
	}
	return out
}
