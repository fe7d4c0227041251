package align

import (
	"math"

	"github.com/snijderlab/pepalign-go/internal/massindex"
	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/snijderlab/pepalign-go/internal/scoring"
)

// Fill allocates and fills the table for a against b under the given
// scoring matrix, tolerance, alignment type, penalties, and block-size
// bound. steps must be >= 1; pass min(len(a), len(b)) for the
// "unbounded" sentinel.
func Fill(
	a, b residue.Sequence,
	matrix scoring.Matrix,
	tol residue.Tolerance,
	at Type,
	pen scoring.Penalties,
	steps int,
) (*Table, error) {
	n, m := len(a), len(b)
	table := NewTable(n, m)
	massA := massindex.Build(a.Masses(), steps)
	massB := massindex.Build(b.Masses(), steps)

	initEdges(table, at, pen, n, m)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if overflowed := fillCell(table, a, b, i, j, matrix, tol, pen, steps, massA, massB); overflowed {
				return nil, &residue.OverflowError{At: [2]int{i, j}}
			}
			if at.IsLocal() {
				clampToFloor(table.At(i, j))
			}
		}
	}
	return table, nil
}

// addScore adds a running score and a new local contribution using an
// int64 intermediate, reporting whether the true sum falls outside
// int32's range instead of silently wrapping.
func addScore(score, local int32) (int32, bool) {
	sum := int64(score) + int64(local)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, true
	}
	return int32(sum), false
}

func initEdges(table *Table, at Type, pen scoring.Penalties, n, m int) {
	table.At(0, 0).Best = Piece{}

	for i := 1; i <= n; i++ {
		c := table.At(i, 0)
		if at.FreeStartA {
			c.Best = Piece{}
			c.GapB = Piece{Score: minScore}
		} else {
			c.Best = gapRunPiece(pen, i, 0)
			c.GapB = c.Best
		}
		c.GapA = Piece{Score: minScore}
	}
	for j := 1; j <= m; j++ {
		c := table.At(0, j)
		if at.FreeStartB {
			c.Best = Piece{}
			c.GapA = Piece{Score: minScore}
		} else {
			c.Best = gapRunPiece(pen, 0, j)
			c.GapA = c.Best
		}
		c.GapB = Piece{Score: minScore}
	}
}

// minScore is a sentinel well below any reachable real score, used to
// keep an empty gap-state out of argmax comparisons without needing a
// separate "has value" flag.
const minScore = int32(-1 << 30)

// gapRunPiece builds the piece for the forced, fully-penalized edge run
// to reach cell (i, j) - one of which must be zero - along one axis:
// gap_open + (len-1)*gap_extend. Column-0 cells (j=0) are reached by
// consuming A only (a deletion run, step_a=1); row-0 cells (i=0) by
// consuming B only (an insertion run, step_b=1).
func gapRunPiece(pen scoring.Penalties, i, j int) Piece {
	length := i
	stepA, stepB := uint16(1), uint16(0)
	if i == 0 {
		length = j
		stepA, stepB = 0, 1
	}
	score := pen.GapOpen + int32(length-1)*pen.GapExtend
	local := pen.GapExtend
	if length == 1 {
		local = pen.GapOpen
	}
	return Piece{Score: score, Local: local, Type: scoring.Gap, StepA: stepA, StepB: stepB}
}

// fillCell computes the best piece reaching (i, j), storing it and the
// two gap sub-states on the cell. Reports true if any candidate's score
// overflows int32.
func fillCell(
	table *Table,
	a, b residue.Sequence,
	i, j int,
	matrix scoring.Matrix,
	tol residue.Tolerance,
	pen scoring.Penalties,
	steps int,
	massA, massB *massindex.Index,
) bool {
	cell := table.At(i, j)
	best := Piece{Score: minScore}
	haveBest := false
	overflowed := false

	consider := func(p Piece) {
		if !haveBest || better(p, best) {
			best = p
			haveBest = true
		}
	}

	maxA := steps
	if i < maxA {
		maxA = i
	}
	maxB := steps
	if j < maxB {
		maxB = j
	}
	for sa := 1; sa <= maxA; sa++ {
		for sb := 1; sb <= maxB; sb++ {
			pred := table.At(i-sa, j-sb).Best
			local, mt, ok := classify(a, b, i, j, sa, sb, tol, matrix, massA, massB, pen)
			if !ok {
				continue
			}
			score, didOverflow := addScore(pred.Score, local)
			overflowed = overflowed || didOverflow
			consider(Piece{
				Score: score,
				Local: local,
				Type:  mt,
				StepA: uint16(sa),
				StepB: uint16(sb),
			})
		}
	}

	// Gap in A: consumes one residue of B only (insertion).
	gapA, gapAOverflowed := gapCandidate(table.At(i, j-1).GapA, table.At(i, j-1).Best, pen, true)
	cell.GapA = gapA
	consider(gapA)

	// Gap in B: consumes one residue of A only (deletion).
	gapB, gapBOverflowed := gapCandidate(table.At(i-1, j).GapB, table.At(i-1, j).Best, pen, false)
	cell.GapB = gapB
	consider(gapB)

	cell.Best = best
	return overflowed || gapAOverflowed || gapBOverflowed
}

// gapCandidate extends a gap run (or opens a new one) from the
// predecessor cell one step back along the relevant axis, picking
// whichever of "open a new run from the cell's overall best" or "extend
// the run already ending there" yields the higher score. gapInA selects
// whether this is a gap in A (step_a=0) or a gap in B (step_b=0).
func gapCandidate(predGapState, predBest Piece, pen scoring.Penalties, gapInA bool) (Piece, bool) {
	var stepA, stepB uint16
	if gapInA {
		stepA, stepB = 0, 1
	} else {
		stepA, stepB = 1, 0
	}

	score, overflowed := addScore(predBest.Score, pen.GapOpen)
	local := pen.GapOpen

	sameDirection := predGapState.Type == scoring.Gap &&
		((gapInA && predGapState.StepA == 0) || (!gapInA && predGapState.StepB == 0))
	if sameDirection && predGapState.Score > minScore/2 {
		if extendScore, extendOverflowed := addScore(predGapState.Score, pen.GapExtend); !extendOverflowed && extendScore > score {
			score, local = extendScore, pen.GapExtend
			overflowed = false
		}
	}

	return Piece{
		Score: score,
		Local: local,
		Type:  scoring.Gap,
		StepA: stepA,
		StepB: stepB,
	}, overflowed
}

// better reports whether candidate p should replace the current best q
// under equal-score tie-breaking: shortest block-size sum, then smallest
// step_a, then lowest (most specific) match-type rank wins.
func better(p, q Piece) bool {
	if p.Score != q.Score {
		return p.Score > q.Score
	}
	sumP, sumQ := int(p.StepA)+int(p.StepB), int(q.StepA)+int(q.StepB)
	if sumP != sumQ {
		return sumP < sumQ
	}
	if p.StepA != q.StepA {
		return p.StepA < q.StepA
	}
	return p.Type.Rank() < q.Type.Rank()
}

func clampToFloor(cell *Cell) {
	if cell.Best.Score < 0 {
		cell.Best = Piece{}
	}
}
