package residue

import "math"

// Unit is one element of an input sequence: an amino-acid identity plus
// its monoisotopic mass, with an optional opaque payload for whatever
// modification representation the caller uses.
type Unit struct {
	AA               AminoAcid
	MonoisotopicMass float64
	Payload          any
}

// New creates a residue unit for the given symbol and mass.
func New(symbol byte, mass float64) (Unit, error) {
	aa, err := ParseAminoAcid(symbol)
	if err != nil {
		return Unit{}, err
	}
	return Unit{AA: aa, MonoisotopicMass: mass}, nil
}

// CanonicallyIdentical reports whether two residue units match under the
// amino-acid ambiguity rules, ignoring mass.
func (u Unit) CanonicallyIdentical(other Unit) bool {
	return CanonicallyEqual(u.AA, other.AA)
}

// Sequence is a finite ordered sequence of residue units - the sole input
// shape the alignment core accepts from its external collaborators
// (ProForma parsers, modification-ontology loaders, etc., all out of
// scope here).
type Sequence []Unit

// Masses returns the monoisotopic mass of every unit, in order.
func (s Sequence) Masses() []float64 {
	masses := make([]float64, len(s))
	for i, u := range s {
		masses[i] = u.MonoisotopicMass
	}
	return masses
}

// String renders the sequence as its one-letter codes.
func (s Sequence) String() string {
	b := make([]byte, len(s))
	for i, u := range s {
		b[i] = u.AA.Symbol()
	}
	return string(b)
}

// FromString builds a Sequence from a one-letter-code string, assigning
// each residue the monoisotopic mass from massOf. Fails with
// MatrixIndexOutOfRangeError on an unrecognised symbol, or
// MissingMassError if massOf returns a negative or non-finite mass.
func FromString(s string, massOf func(AminoAcid) float64) (Sequence, error) {
	seq := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		aa, err := ParseAminoAcid(s[i])
		if err != nil {
			return nil, err
		}
		m := massOf(aa)
		if !(m >= 0) || math.IsInf(m, 1) { // !(m >= 0) also catches NaN
			return nil, &MissingMassError{Index: i}
		}
		seq[i] = Unit{AA: aa, MonoisotopicMass: m}
	}
	return seq, nil
}
