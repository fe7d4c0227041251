// Package residue provides the amino-acid alphabet, the residue value
// type, and tolerant mass comparison used throughout the alignment engine.
package residue

import "fmt"

// AlignError is implemented by every error the engine raises: a narrow
// marker interface over the five error kinds below.
type AlignError interface {
	error
	IsAlignError()
}

// EmptySequenceError is returned when a non-local alignment is requested
// on a zero-length input.
type EmptySequenceError struct {
	// Which side was empty: "a" or "b".
	Side string
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("sequence %s must have at least one residue", e.Side)
}

func (e *EmptySequenceError) IsAlignError() {}

// InvalidToleranceError is returned when a Tolerance is constructed with a
// negative or non-finite parameter.
type InvalidToleranceError struct {
	Value float64
}

func (e *InvalidToleranceError) Error() string {
	return fmt.Sprintf("invalid tolerance value %v: must be finite and non-negative", e.Value)
}

func (e *InvalidToleranceError) IsAlignError() {}

// MissingMassError is returned when a residue unit carries no resolvable
// monoisotopic mass.
type MissingMassError struct {
	Index int
}

func (e *MissingMassError) Error() string {
	return fmt.Sprintf("residue at index %d has no resolvable monoisotopic mass", e.Index)
}

func (e *MissingMassError) IsAlignError() {}

// MatrixIndexOutOfRangeError is returned when a residue symbol outside the
// 26-letter alphabet is encountered.
type MatrixIndexOutOfRangeError struct {
	Symbol rune
}

func (e *MatrixIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("residue symbol %q is outside the 26-letter alphabet", e.Symbol)
}

func (e *MatrixIndexOutOfRangeError) IsAlignError() {}

// OverflowError is returned when the signed-32 score accumulator would
// wrap. Only reachable for pathological inputs.
type OverflowError struct {
	At [2]int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("score accumulator overflow at cell %v", e.At)
}

func (e *OverflowError) IsAlignError() {}
