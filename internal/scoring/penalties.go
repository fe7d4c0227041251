package scoring

// Penalties holds the fixed scores and bonuses that parameterise a run of
// the alignment engine. All fields are overridable via functional options
// on the facade (pkg/pepalign); the values are not validated.
type Penalties struct {
	Mismatch     int32 // applied for Mismatch
	MassMismatch int32 // additive penalty for IdentityMassMismatch
	BaseSpecial  int32 // base bonus for any Isobaric/Rotation block, per step
	Isobaric     int32 // additional bonus for Isobaric
	Rotated      int32 // additional bonus for Rotation
	GapOpen      int32 // charged when a run of gaps begins
	GapExtend    int32 // charged for each additional gap step in the same run
}

// DefaultPenalties returns the engine's baked-in default scoring
// constants.
func DefaultPenalties() Penalties {
	return Penalties{
		Mismatch:     -1,
		MassMismatch: -1,
		BaseSpecial:  1,
		Isobaric:     2,
		Rotated:      3,
		GapOpen:      -4,
		GapExtend:    -1,
	}
}
