package align

import "github.com/snijderlab/pepalign-go/internal/scoring"

// Piece records one step of a reconstructed alignment path: a cumulative
// score, the local contribution of this step alone, the kind of step,
// and the block sizes it consumed from each sequence.
type Piece struct {
	Score int32
	Local int32
	Type  scoring.MatchType
	StepA uint16
	StepB uint16
}

// IsStart reports whether this is the unique zero piece marking the
// beginning of a path (step_a = step_b = 0).
func (p Piece) IsStart() bool {
	return p.StepA == 0 && p.StepB == 0
}

// IsGapInA reports whether this piece is an insertion gap (consumes a
// residue from B only).
func (p Piece) IsGapInA() bool {
	return p.Type == scoring.Gap && p.StepA == 0
}

// IsGapInB reports whether this piece is a deletion gap (consumes a
// residue from A only).
func (p Piece) IsGapInB() bool {
	return p.Type == scoring.Gap && p.StepB == 0
}
