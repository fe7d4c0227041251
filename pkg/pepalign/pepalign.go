// Package pepalign is the public facade for the mass-aware peptide
// alignment engine: it re-exports the internal packages' types behind a
// single import and wires them together in Align.
package pepalign

import (
	"fmt"

	"github.com/snijderlab/pepalign-go/internal/align"
	"github.com/snijderlab/pepalign-go/internal/alignstats"
	"github.com/snijderlab/pepalign-go/internal/residue"
	"github.com/snijderlab/pepalign-go/internal/scoring"
)

// Re-exported types, so callers need only import this one package.
type (
	Unit      = residue.Unit
	Sequence  = residue.Sequence
	Tolerance = residue.Tolerance
	Matrix    = scoring.Matrix
	Penalties = scoring.Penalties
	AlignType = align.Type
	Alignment = alignstats.Alignment
)

// Re-exported constructors and named matrices.
var (
	NewResidue          = residue.New
	AbsoluteTolerance   = residue.AbsoluteTolerance
	RelativeTolerance   = residue.RelativeTolerance
	BLOSUM45            = scoring.BLOSUM45
	BLOSUM50            = scoring.BLOSUM50
	BLOSUM62            = scoring.BLOSUM62
	BLOSUM80            = scoring.BLOSUM80
	BLOSUM90            = scoring.BLOSUM90
	PAM30               = scoring.PAM30
	PAM70               = scoring.PAM70
	PAM250              = scoring.PAM250
	IdentityMatrix      = scoring.Identity
	NamedMatrix         = scoring.Named
	ParseMatrix         = scoring.ParseMatrix
	DefaultPenalties    = scoring.DefaultPenalties
	Global              = align.Global
	Local               = align.Local
	SemiGlobalFreeStart = align.SemiGlobalFreeStart
	SemiGlobalFreeEnd   = align.SemiGlobalFreeEnd
)

// AlignOption customises a call to Align beyond its required parameters.
// A functional-options type; options are applied in order and their
// values are not validated.
type AlignOption func(*alignConfig)

type alignConfig struct {
	penalties scoring.Penalties
	steps     int
}

// WithPenalties overrides the default fixed penalties and bonuses.
func WithPenalties(p Penalties) AlignOption {
	return func(c *alignConfig) { c.penalties = p }
}

// WithSteps overrides the maximum block size. 0 means "unbounded":
// min(len(a), len(b)).
func WithSteps(steps int) AlignOption {
	return func(c *alignConfig) { c.steps = steps }
}

// Align runs the mass-aware alignment engine over a and b under matrix,
// tolerance, and at, returning the best alignment and its path. Fails
// with a *residue.EmptySequenceError-wrapping error for non-local modes
// on a zero-length input; local mode legally returns a zero-score empty
// alignment instead.
func Align(a, b Sequence, matrix Matrix, tol Tolerance, at AlignType, opts ...AlignOption) (*Alignment, error) {
	cfg := alignConfig{penalties: scoring.DefaultPenalties()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !at.IsLocal() {
		if len(a) == 0 {
			return nil, fmt.Errorf("pepalign: align: %w", &residue.EmptySequenceError{Side: "a"})
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("pepalign: align: %w", &residue.EmptySequenceError{Side: "b"})
		}
	}

	steps := cfg.steps
	if steps <= 0 {
		steps = minInt(len(a), len(b))
		if steps == 0 {
			steps = 1
		}
	}

	if len(a) == 0 || len(b) == 0 {
		return alignstats.New(a, b, align.Path{}, matrix, tol, at, steps), nil
	}

	table, err := align.Fill(a, b, matrix, tol, at, cfg.penalties, steps)
	if err != nil {
		return nil, fmt.Errorf("pepalign: align: %w", err)
	}
	termI, termJ := align.Terminal(table, at)
	path := align.Reconstruct(table, termI, termJ)
	return alignstats.New(a, b, path, matrix, tol, at, steps), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Version returns the pepalign module version.
func Version() string {
	return "1.0.0"
}

// Info returns a short description of the library's scope.
func Info() string {
	return fmt.Sprintf(`pepalign v%s - mass-aware peptide sequence alignment

Features:
  - Global (Needleman-Wunsch), local (Smith-Waterman), and semi-global alignment
  - k-to-l block moves of equal monoisotopic mass (isobaric and rotation matches)
  - BLOSUM and PAM substitution matrices with ambiguous-residue handling
  - Absolute and relative (ppm) mass tolerance
  - CIGAR-like short-form path rendering
`, Version())
}
