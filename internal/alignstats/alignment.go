// Package alignstats holds the immutable alignment result and the
// derived statistics and short-form rendering built from it.
package alignstats

import (
	"github.com/snijderlab/pepalign-go/internal/align"
	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/snijderlab/pepalign-go/internal/scoring"
)

// Alignment is the immutable result of one alignment call: the two input
// sequences, the path of pieces that aligns them, and the parameters the
// engine ran under.
type Alignment struct {
	SeqA, SeqB residue.Sequence
	StartA     int
	StartB     int
	Path       []align.Piece
	Matrix     scoring.Matrix
	Tolerance  residue.Tolerance
	AlignType  align.Type
	Steps      int
}

// New builds an Alignment from a filled table's reconstructed path and
// the parameters used to build it.
func New(seqA, seqB residue.Sequence, path align.Path, matrix scoring.Matrix, tol residue.Tolerance, at align.Type, steps int) *Alignment {
	return &Alignment{
		SeqA:      seqA,
		SeqB:      seqB,
		StartA:    path.StartA,
		StartB:    path.StartB,
		Path:      path.Pieces,
		Matrix:    matrix,
		Tolerance: tol,
		AlignType: at,
		Steps:     steps,
	}
}

// Owned returns a deep copy of this alignment, suitable for crossing an
// API boundary once the original input slices may be reused or mutated
// by the caller.
func (a *Alignment) Owned() *Alignment {
	owned := *a
	owned.SeqA = append(residue.Sequence(nil), a.SeqA...)
	owned.SeqB = append(residue.Sequence(nil), a.SeqB...)
	owned.Path = append([]align.Piece(nil), a.Path...)
	return &owned
}

// Score is the raw cumulative score at the end of the path.
func (a *Alignment) Score() int32 {
	var sum int32
	for _, p := range a.Path {
		sum += p.Local
	}
	return sum
}

// Length is the number of pieces (aligned positions, including gaps) in
// the path.
func (a *Alignment) Length() int {
	return len(a.Path)
}

// Identity is the count of FullIdentity pieces.
func (a *Alignment) Identity() int {
	n := 0
	for _, p := range a.Path {
		if p.Type == scoring.FullIdentity {
			n++
		}
	}
	return n
}

// Similarity is the count of pieces whose matrix score (or block bonus)
// is strictly positive: for a single-residue step the matrix entry
// between the two residues, with no mismatch or mass-mismatch penalty
// applied; for a Rotation or Isobaric block its local bonus. Gap pieces
// never count.
func (a *Alignment) Similarity() int {
	n := 0
	i, j := a.StartA, a.StartB
	for _, p := range a.Path {
		switch {
		case p.Type == scoring.Gap:
		case p.StepA == 1 && p.StepB == 1:
			if a.Matrix.Score(a.SeqA[i].AA, a.SeqB[j].AA) > 0 {
				n++
			}
		case p.Local > 0:
			n++
		}
		i += int(p.StepA)
		j += int(p.StepB)
	}
	return n
}

// GapCount is the number of Gap pieces in the path.
func (a *Alignment) GapCount() int {
	n := 0
	for _, p := range a.Path {
		if p.Type == scoring.Gap {
			n++
		}
	}
	return n
}

// GapFraction is GapCount / Length, or zero for an empty path.
func (a *Alignment) GapFraction() float64 {
	if len(a.Path) == 0 {
		return 0
	}
	return float64(a.GapCount()) / float64(len(a.Path))
}

// NormalisedScore is Score() / selfScore, where selfScore is the score of
// aligning the shorter of the two input sequences to itself under the
// same matrix.
func (a *Alignment) NormalisedScore() float64 {
	shorter := a.SeqA
	if len(a.SeqB) < len(shorter) {
		shorter = a.SeqB
	}
	var rMax int32
	for _, u := range shorter {
		rMax += int32(a.Matrix.Score(u.AA, u.AA))
	}
	if rMax == 0 {
		return 0
	}
	return float64(a.Score()) / float64(rMax)
}

// PPM returns the parts-per-million mass error between the total mass
// traversed on each side of the path.
func (a *Alignment) PPM() float64 {
	massA, massB := a.traversedMass()
	return residue.PPM(massA, massB)
}

func (a *Alignment) traversedMass() (massA, massB float64) {
	i, j := a.StartA, a.StartB
	for _, p := range a.Path {
		for k := 0; k < int(p.StepA); k++ {
			massA += a.SeqA[i+k].MonoisotopicMass
		}
		for k := 0; k < int(p.StepB); k++ {
			massB += a.SeqB[j+k].MonoisotopicMass
		}
		i += int(p.StepA)
		j += int(p.StepB)
	}
	return massA, massB
}
