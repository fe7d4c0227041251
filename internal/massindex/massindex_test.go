package massindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSingleResidueBlocks(t *testing.T) {
	masses := []float64{71.0, 103.0, 115.0, 129.0}
	idx := Build(masses, 2)

	for i, m := range masses {
		got, ok := idx.Mass(i+1, 1)
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestBuildTwoResidueBlocks(t *testing.T) {
	masses := []float64{71.0, 103.0, 115.0, 129.0}
	idx := Build(masses, 3)

	got, ok := idx.Mass(2, 2)
	assert.True(t, ok)
	assert.Equal(t, 71.0+103.0, got)

	got, ok = idx.Mass(4, 3)
	assert.True(t, ok)
	assert.Equal(t, 103.0+115.0+129.0, got)
}

func TestMassOutOfRange(t *testing.T) {
	idx := Build([]float64{1, 2, 3}, 2)

	_, ok := idx.Mass(0, 1)
	assert.False(t, ok)

	_, ok = idx.Mass(1, 2) // block size 2 impossible at position 1
	assert.False(t, ok)

	_, ok = idx.Mass(3, 3) // exceeds MaxBlock of 2
	assert.False(t, ok)

	_, ok = idx.Mass(4, 1) // exceeds sequence length
	assert.False(t, ok)
}

func TestLengthClosedForm(t *testing.T) {
	// For n <= m every row i contributes i entries: triangular number.
	assert.Equal(t, 1+2+3, length(3, 5))
	// For n > m, rows beyond m each contribute exactly m entries.
	assert.Equal(t, 1+2+2+2, length(4, 2))
}

func TestMaxBlock(t *testing.T) {
	idx := Build([]float64{1, 2, 3}, 2)
	assert.Equal(t, 2, idx.MaxBlock())
}
