package align

import (
	"math"
	"testing"

	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/snijderlab/pepalign-go/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, s string, massOf func(residue.AminoAcid) float64) residue.Sequence {
	t.Helper()
	seq, err := residue.FromString(s, massOf)
	require.NoError(t, err)
	return seq
}

// monoisotopicMass is a small residue-mass table sufficient for the
// alignment scenarios under test; values are standard monoisotopic
// residue masses (daltons).
func monoisotopicMass(aa residue.AminoAcid) float64 {
	masses := map[residue.AminoAcid]float64{
		residue.Ala: 71.03711,
		residue.Arg: 156.10111,
		residue.Asn: 114.04293,
		residue.Asp: 115.02694,
		residue.Cys: 103.00919,
		residue.Gln: 128.05858,
		residue.Glu: 129.04259,
		residue.Gly: 57.02146,
		residue.His: 137.05891,
		residue.Ile: 113.08406,
		residue.Leu: 113.08406,
		residue.Lys: 128.09496,
		residue.Met: 131.04049,
		residue.Phe: 147.06841,
		residue.Pro: 97.05276,
		residue.Ser: 87.03203,
		residue.Thr: 101.04768,
		residue.Trp: 186.07931,
		residue.Tyr: 163.06333,
		residue.Val: 99.06841,
	}
	return masses[aa]
}

func TestReflexivity(t *testing.T) {
	seq := mustSeq(t, "ANGARS", monoisotopicMass)
	matrix := scoring.Identity()
	tol := residue.MustAbsoluteTolerance(0)
	pen := scoring.DefaultPenalties()

	table, err := Fill(seq, seq, matrix, tol, Global(), pen, 1)
	require.NoError(t, err)
	termI, termJ := Terminal(table, Global())
	path := Reconstruct(table, termI, termJ)

	var want int32
	for _, r := range seq {
		want += int32(matrix.Score(r.AA, r.AA))
	}
	assert.Equal(t, want, table.At(termI, termJ).Best.Score)
	for _, p := range path.Pieces {
		assert.Equal(t, scoring.FullIdentity, p.Type)
	}
}

func TestSymmetry(t *testing.T) {
	a := mustSeq(t, "ANGARS", monoisotopicMass)
	b := mustSeq(t, "AGGQRS", monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	forward, err := Fill(a, b, matrix, tol, Global(), pen, 4)
	require.NoError(t, err)
	fi, fj := Terminal(forward, Global())

	backward, err := Fill(b, a, matrix, tol, Global(), pen, 4)
	require.NoError(t, err)
	bi, bj := Terminal(backward, Global())

	assert.Equal(t, forward.At(fi, fj).Best.Score, backward.At(bi, bj).Best.Score)
}

func TestMonotonicityInSteps(t *testing.T) {
	a := mustSeq(t, "AGGHT", monoisotopicMass)
	b := mustSeq(t, "ANTH", monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	var prev int32 = -1 << 30
	for steps := 1; steps <= 4; steps++ {
		table, err := Fill(a, b, matrix, tol, Global(), pen, steps)
		require.NoError(t, err)
		i, j := Terminal(table, Global())
		score := table.At(i, j).Best.Score
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestTracebackIntegrity(t *testing.T) {
	a := mustSeq(t, "IVQEVS", monoisotopicMass)
	b := mustSeq(t, "LEVQVES", monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	table, err := Fill(a, b, matrix, tol, Global(), pen, 4)
	require.NoError(t, err)
	i, j := Terminal(table, Global())
	path := Reconstruct(table, i, j)

	var sum int32
	for _, p := range path.Pieces {
		sum += p.Local
	}
	assert.Equal(t, table.At(i, j).Best.Score, sum)
}

func TestLocalModeNonNegativeFloor(t *testing.T) {
	a := mustSeq(t, "AAAAA", monoisotopicMass)
	b := mustSeq(t, "WWWWW", monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	table, err := Fill(a, b, matrix, tol, Local(), pen, 1)
	require.NoError(t, err)
	for i := 0; i <= len(a); i++ {
		for j := 0; j <= len(b); j++ {
			assert.GreaterOrEqual(t, table.At(i, j).Best.Score, int32(0))
		}
	}
}

func TestGapOpenVsExtend(t *testing.T) {
	a := mustSeq(t, "AAAAA", monoisotopicMass)
	b := mustSeq(t, "AAA", monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	table, err := Fill(a, b, matrix, tol, Global(), pen, 1)
	require.NoError(t, err)
	i, j := Terminal(table, Global())
	path := Reconstruct(table, i, j)

	var gapRun int
	var gapLocals []int32
	for _, p := range path.Pieces {
		if p.Type == scoring.Gap {
			gapRun++
			gapLocals = append(gapLocals, p.Local)
		}
	}
	assert.Equal(t, 2, gapRun)
	assert.Equal(t, []int32{pen.GapOpen, pen.GapExtend}, gapLocals)
}

func TestFillReportsOverflowError(t *testing.T) {
	a := mustSeq(t, "AA", monoisotopicMass)
	b := mustSeq(t, "AA", monoisotopicMass)
	matrix := scoring.Identity()
	tol := residue.MustAbsoluteTolerance(0)
	pen := scoring.DefaultPenalties()
	pen.GapOpen = math.MaxInt32 - 10

	_, err := Fill(a, b, matrix, tol, Global(), pen, 1)
	require.Error(t, err)
	var target *residue.OverflowError
	assert.ErrorAs(t, err, &target)
}

func BenchmarkFill(b *testing.B) {
	s1 := ""
	s2 := ""
	for i := 0; i < 250; i++ {
		s1 += "ACGT"
		s2 += "AGCT"
	}
	a, _ := residue.FromString(s1, monoisotopicMass)
	seqB, _ := residue.FromString(s2, monoisotopicMass)
	matrix := scoring.BLOSUM62()
	tol := residue.MustRelativeTolerance(10)
	pen := scoring.DefaultPenalties()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Fill(a, seqB, matrix, tol, Global(), pen, 1)
	}
}
