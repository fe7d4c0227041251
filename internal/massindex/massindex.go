// Package massindex provides compact triangular storage for the partial
// block masses the alignment engine's recurrence consumes.
package massindex

// Index stores the sum of monoisotopic masses of seq[i-k:i] for every
// 0 < i <= N and 1 <= k <= min(i, MaxBlock), in a single flat array rather
// than a dense N x MaxBlock rectangle. When N is much larger than
// MaxBlock, a dense rectangle wastes roughly half its slots; this layout
// avoids that waste and keeps the hot (i, k) data contiguous.
type Index struct {
	maxBlock int
	masses   []float64 // flat, see length/offset below
}

// length returns the number of entries needed to store a triangular index
// over a sequence of n residues with a maximum block size of m: the
// closed-form size of row 1..n where row i holds min(i, m) entries.
func length(n, m int) int {
	d := n
	if m < d {
		d = m
	}
	extra := n - m
	if extra < 0 {
		extra = 0
	}
	return d*(d+1)/2 + extra*m
}

// Build constructs an Index over residueMasses (one monoisotopic mass per
// residue, in sequence order) for block sizes 1..maxBlock. It fills the
// array in one forward pass, using the invariant entry(i, k) = entry(i-1,
// k-1) + residueMasses[i-1].
func Build(residueMasses []float64, maxBlock int) *Index {
	n := len(residueMasses)
	idx := &Index{
		maxBlock: maxBlock,
		masses:   make([]float64, length(n, maxBlock)),
	}
	for i := 1; i <= n; i++ {
		kMax := maxBlock
		if i < kMax {
			kMax = i
		}
		rowOffset := idx.offset(i)
		// entry(i,k) = entry(i-1,k-1) + mass(seq[i-1]), with entry(i-1,0)
		// defined as 0 (the empty block).
		for k := 1; k <= kMax; k++ {
			var prev float64
			if k > 1 {
				prev = idx.at(i-1, k-1)
			}
			idx.masses[rowOffset+k-1] = prev + residueMasses[i-1]
		}
	}
	return idx
}

// offset returns the flat index of the first entry belonging to row i
// (1-indexed end position), i.e. length(i-1, maxBlock).
func (idx *Index) offset(i int) int {
	return length(i-1, idx.maxBlock)
}

// at returns the flat array value for (i, k) without bounds checking;
// used internally during Build where bounds are already known to hold.
func (idx *Index) at(i, k int) float64 {
	return idx.masses[idx.offset(i)+k-1]
}

// MaxBlock returns the maximum block size this index was built for.
func (idx *Index) MaxBlock() int { return idx.maxBlock }

// Mass returns the sum of monoisotopic masses of the block ending at
// position i (1-indexed, exclusive-end convention matching seq[i-k:i])
// with size k. ok is false when i or k fall outside the range the index
// was built for.
func (idx *Index) Mass(i, k int) (mass float64, ok bool) {
	if i < 1 || k < 1 || k > i || k > idx.maxBlock || idx.offset(i)+k-1 >= len(idx.masses) {
		return 0, false
	}
	return idx.at(i, k), true
}
