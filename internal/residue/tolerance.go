package residue

import "math"

type toleranceKind uint8

const (
	toleranceAbsolute toleranceKind = iota
	toleranceRelative
)

// Tolerance expresses how close two monoisotopic masses must be to count
// as equal: either an absolute delta in daltons, or a relative delta in
// parts per million. AbsoluteTolerance(0) is the sentinel for exact mass
// equality.
type Tolerance struct {
	kind  toleranceKind
	value float64
}

// AbsoluteTolerance builds a Tolerance of the form |a-b| <= deltaDaltons.
func AbsoluteTolerance(deltaDaltons float64) (Tolerance, error) {
	if !validMagnitude(deltaDaltons) {
		return Tolerance{}, &InvalidToleranceError{Value: deltaDaltons}
	}
	return Tolerance{kind: toleranceAbsolute, value: deltaDaltons}, nil
}

// RelativeTolerance builds a Tolerance of the form
// |a-b| / max(|a|,|b|) * 1e6 <= ppm.
func RelativeTolerance(ppm float64) (Tolerance, error) {
	if !validMagnitude(ppm) {
		return Tolerance{}, &InvalidToleranceError{Value: ppm}
	}
	return Tolerance{kind: toleranceRelative, value: ppm}, nil
}

// MustAbsoluteTolerance panics on an invalid parameter. Handy for package
// init and tests that build tolerances from literal constants.
func MustAbsoluteTolerance(deltaDaltons float64) Tolerance {
	t, err := AbsoluteTolerance(deltaDaltons)
	if err != nil {
		panic(err)
	}
	return t
}

// MustRelativeTolerance panics on an invalid parameter.
func MustRelativeTolerance(ppm float64) Tolerance {
	t, err := RelativeTolerance(ppm)
	if err != nil {
		panic(err)
	}
	return t
}

func validMagnitude(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Within reports whether a and b are equal within this tolerance. Holds
// reflexively for any finite a (Within(a, a) is always true) and is
// symmetric in a and b.
func (t Tolerance) Within(a, b float64) bool {
	diff := math.Abs(a - b)
	switch t.kind {
	case toleranceRelative:
		denom := math.Max(math.Abs(a), math.Abs(b))
		if denom == 0 {
			return diff == 0
		}
		return diff/denom*1e6 <= t.value
	default:
		return diff <= t.value
	}
}

// PPM returns the parts-per-million error between two masses, using the
// first as the reference.
func PPM(a, b float64) float64 {
	if a == 0 {
		if b == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(a-b) / a * 1e6
}
