package scoring

import (
	"testing"

	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/stretchr/testify/assert"
)

func TestBLOSUM62Symmetric(t *testing.T) {
	m := BLOSUM62()
	for a := residue.AminoAcid(0); int(a) < residue.TotalAminoAcids; a++ {
		for b := residue.AminoAcid(0); int(b) < residue.TotalAminoAcids; b++ {
			assert.Equal(t, m.Score(a, b), m.Score(b, a), "matrix must be symmetric at (%v,%v)", a, b)
		}
	}
}

func TestBLOSUM62KnownValues(t *testing.T) {
	m := BLOSUM62()
	assert.Equal(t, int8(4), m.Score(residue.Ala, residue.Ala))
	assert.Equal(t, int8(11), m.Score(residue.Trp, residue.Trp))
	assert.Equal(t, int8(-3), m.Score(residue.Ala, residue.Trp))
}

func TestXIsAlwaysZero(t *testing.T) {
	for _, m := range []Matrix{BLOSUM45(), BLOSUM50(), BLOSUM62(), BLOSUM80(), BLOSUM90(), PAM30(), PAM70(), PAM250(), Identity()} {
		for a := residue.AminoAcid(0); int(a) < residue.TotalAminoAcids; a++ {
			assert.Equal(t, int8(0), m.Score(residue.Xaa, a))
			assert.Equal(t, int8(0), m.Score(a, residue.Xaa))
		}
	}
}

func TestAmbiguousRowIsMeanOfDisambiguations(t *testing.T) {
	m := BLOSUM62()
	// B vs A should be floor(mean(N-vs-A, D-vs-A))
	want := int8(-2) // floor((-2 + -2) / 2)
	assert.Equal(t, want, m.Score(residue.Asx, residue.Ala))
}

func TestUOProxyToCysLys(t *testing.T) {
	m := BLOSUM62()
	assert.Equal(t, m.Score(residue.Cys, residue.Cys), m.Score(residue.Sec, residue.Sec))
	assert.Equal(t, m.Score(residue.Lys, residue.Arg), m.Score(residue.Pyl, residue.Arg))
}

func TestIdentityMatrix(t *testing.T) {
	m := Identity()
	assert.Equal(t, int8(9), m.Score(residue.Ala, residue.Ala))
	assert.Equal(t, int8(-5), m.Score(residue.Ala, residue.Arg))
}

func TestNamedLookup(t *testing.T) {
	m, ok := Named("blosum-62")
	assert.True(t, ok)
	assert.Equal(t, BLOSUM62(), m)

	_, ok = Named("not-a-matrix")
	assert.False(t, ok)
}

func TestDefaultPenalties(t *testing.T) {
	p := DefaultPenalties()
	assert.Equal(t, int32(-1), p.Mismatch)
	assert.Equal(t, int32(-4), p.GapOpen)
}

func TestMatchTypeRankOrder(t *testing.T) {
	assert.True(t, FullIdentity.Rank() < Rotation.Rank())
	assert.True(t, Rotation.Rank() < Isobaric.Rank())
	assert.True(t, Isobaric.Rank() < IdentityMassMismatch.Rank())
	assert.True(t, IdentityMassMismatch.Rank() < Mismatch.Rank())
	assert.True(t, Mismatch.Rank() < Gap.Rank())
}
