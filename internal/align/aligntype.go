// Package align implements the mass-aware alignment table: its fill
// recurrence, terminal-cell selection, and traceback reconstruction.
package align

// EndPolicy names which sequence, if any, is anchored (forced to the
// sequence boundary) at one end of the alignment.
type EndPolicy uint8

const (
	// GlobalA anchors sequence A's boundary at this end; sequence B's end
	// is free to start or finish anywhere (an "overhang" of B is free).
	GlobalA EndPolicy = iota
	// GlobalB anchors sequence B's boundary; A's end is free.
	GlobalB
	// Either anchors neither sequence: both ends are free at this side.
	Either
)

// Type controls, independently for each sequence and each end,
// whether that boundary must land exactly on the sequence's edge (and so
// is charged ordinary gap penalties when it doesn't) or is free (charged
// nothing). The four named alignment modes - fully global, semi-global
// free-left, semi-global free-right, and local - are all expressible as
// particular settings of these four flags; local additionally clamps
// every cell to a non-negative score floor.
type Type struct {
	FreeStartA bool
	FreeStartB bool
	FreeEndA   bool
	FreeEndB   bool
}

// NewType builds a Type from the left/right EndPolicy pair.
// Note this cannot express "both sequences anchored and independent" at
// the same end (GlobalA and GlobalB are mutually exclusive per end) -
// for that, use Global() directly, or set the four booleans by hand.
func NewType(left, right EndPolicy) Type {
	return Type{
		FreeStartA: left == GlobalB || left == Either,
		FreeStartB: left == GlobalA || left == Either,
		FreeEndA:   right == GlobalB || right == Either,
		FreeEndB:   right == GlobalA || right == Either,
	}
}

// Global returns the fully global alignment type: both sequences are
// anchored at both ends, recovering classical Needleman-Wunsch.
func Global() Type {
	return Type{}
}

// SemiGlobalFreeStart returns the alignment type with both sequences'
// left ends free and both right ends anchored.
func SemiGlobalFreeStart() Type {
	return Type{FreeStartA: true, FreeStartB: true}
}

// SemiGlobalFreeEnd returns the alignment type with both sequences'
// right ends free and both left ends anchored.
func SemiGlobalFreeEnd() Type {
	return Type{FreeEndA: true, FreeEndB: true}
}

// Local returns the fully local alignment type: every end is free on
// both sequences, and the fill step additionally clamps every cell to a
// score floor of zero.
func Local() Type {
	return Type{FreeStartA: true, FreeStartB: true, FreeEndA: true, FreeEndB: true}
}

// IsLocal reports whether every end is free on both sequences - the
// condition under which the score-floor clamp applies.
func (t Type) IsLocal() bool {
	return t.FreeStartA && t.FreeStartB && t.FreeEndA && t.FreeEndB
}
