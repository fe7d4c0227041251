package align

import (
	"github.com/snijderlab/pepalign-go/internal/massindex"
	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/snijderlab/pepalign-go/internal/scoring"
)

// classify computes the local score and MatchType for stepping from
// (i-a, j-b) to (i, j), applying the four-branch classification rule. ok
// is false when the step must be rejected outright (block masses
// disagree beyond tolerance for a block move).
func classify(
	a, b residue.Sequence,
	i, j, stepA, stepB int,
	tol residue.Tolerance,
	matrix scoring.Matrix,
	massA, massB *massindex.Index,
	pen scoring.Penalties,
) (local int32, mt scoring.MatchType, ok bool) {
	if stepA == 1 && stepB == 1 {
		ra, rb := a[i-1], b[j-1]
		identical := residue.CanonicallyEqual(ra.AA, rb.AA)
		massOK := tol.Within(ra.MonoisotopicMass, rb.MonoisotopicMass)
		base := int32(matrix.Score(ra.AA, rb.AA))
		switch {
		case identical && massOK:
			return base, scoring.FullIdentity, true
		case identical && !massOK:
			return base + pen.MassMismatch, scoring.IdentityMassMismatch, true
		default:
			return base + pen.Mismatch, scoring.Mismatch, true
		}
	}

	massSumA, okA := massA.Mass(i, stepA)
	massSumB, okB := massB.Mass(j, stepB)
	if !okA || !okB || !tol.Within(massSumA, massSumB) {
		return 0, 0, false
	}

	blockSpecial := pen.BaseSpecial * int32(stepA+stepB)
	if stepA == stepB && canonicalMultisetEqual(a[i-stepA:i], b[j-stepB:j]) {
		return blockSpecial + pen.Rotated, scoring.Rotation, true
	}
	return blockSpecial + pen.Isobaric, scoring.Isobaric, true
}

// canonicalMultisetEqual reports whether the two residue blocks are
// permutations of one another under canonical identity (the amino-acid
// ambiguity rules). Wildcards (X) and ambiguous codes (B/J/Z) make
// canonical identity non-transitive, so this is a bipartite matching, not
// a sorted-compare: find any assignment pairing each element of left with
// a distinct, canonically-equal element of right. Block sizes are bounded
// by STEPS (typically <= 8), so a simple backtracking search suffices.
func canonicalMultisetEqual(left, right residue.Sequence) bool {
	if len(left) != len(right) {
		return false
	}
	used := make([]bool, len(right))
	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(left) {
			return true
		}
		for j := range right {
			if used[j] || !residue.CanonicallyEqual(left[i].AA, right[j].AA) {
				continue
			}
			used[j] = true
			if assign(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}
	return assign(0)
}
