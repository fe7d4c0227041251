package align

// Path is the ordered sequence of pieces from the alignment's start cell
// to its terminal cell, plus the coordinates of the start cell.
type Path struct {
	StartA int
	StartB int
	Pieces []Piece
}

// Terminal returns the row, column of the table's terminal cell for the
// given alignment type: (n, m) when both right ends are anchored, the
// best cell along the last column/row when one side is free, or the
// global best cell over the whole table for local alignment (with ties
// broken toward the smaller (i, j)).
func Terminal(table *Table, at Type) (i, j int) {
	n, m := table.Rows()-1, table.Cols()-1

	if at.IsLocal() {
		bestI, bestJ := 0, 0
		bestScore := table.At(0, 0).Best.Score
		for r := 0; r <= n; r++ {
			for c := 0; c <= m; c++ {
				s := table.At(r, c).Best.Score
				if s > bestScore {
					bestScore, bestI, bestJ = s, r, c
				}
			}
		}
		return bestI, bestJ
	}

	switch {
	case at.FreeEndA && at.FreeEndB:
		// Both ends free: best cell along either the last row or column.
		bestI, bestJ := n, m
		bestScore := table.At(n, m).Best.Score
		for r := 0; r <= n; r++ {
			if s := table.At(r, m).Best.Score; s > bestScore {
				bestScore, bestI, bestJ = s, r, m
			}
		}
		for c := 0; c <= m; c++ {
			if s := table.At(n, c).Best.Score; s > bestScore {
				bestScore, bestI, bestJ = s, n, c
			}
		}
		return bestI, bestJ
	case at.FreeEndA:
		// A's end is free: search the last column for the best row.
		bestI, bestScore := n, table.At(n, m).Best.Score
		for r := 0; r <= n; r++ {
			if s := table.At(r, m).Best.Score; s > bestScore {
				bestScore, bestI = s, r
			}
		}
		return bestI, m
	case at.FreeEndB:
		// B's end is free: search the last row for the best column.
		bestJ, bestScore := m, table.At(n, m).Best.Score
		for c := 0; c <= m; c++ {
			if s := table.At(n, c).Best.Score; s > bestScore {
				bestScore, bestJ = s, c
			}
		}
		return n, bestJ
	default:
		return n, m
	}
}

// Reconstruct walks backward from the terminal cell to the start cell
// (the unique piece with step_a = step_b = 0), accumulating pieces in
// forward order. A gap piece that extends a run is followed into the
// predecessor's gap state (GapA/GapB) it was scored from, rather than the
// predecessor's overall best piece.
func Reconstruct(table *Table, termI, termJ int) Path {
	i, j := termI, termJ
	var pieces []Piece
	piece := table.At(i, j).Best
	for !piece.IsStart() {
		pieces = append(pieces, piece)
		i -= int(piece.StepA)
		j -= int(piece.StepB)
		pred := table.At(i, j)
		next := pred.Best
		switch {
		case piece.IsGapInA() && pred.GapA.IsGapInA() && pred.GapA.Score+piece.Local == piece.Score:
			next = pred.GapA
		case piece.IsGapInB() && pred.GapB.IsGapInB() && pred.GapB.Score+piece.Local == piece.Score:
			next = pred.GapB
		}
		piece = next
	}
	// Reverse into forward order.
	for l, r := 0, len(pieces)-1; l < r; l, r = l+1, r-1 {
		pieces[l], pieces[r] = pieces[r], pieces[l]
	}
	return Path{StartA: i, StartB: j, Pieces: pieces}
}
