package alignstats

import (
	"testing"

	"github.com/snijderlab/pepalign-go/internal/align"
	"github.com/snijderlab/pepalign-go/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func piece(stepA, stepB uint16, mt scoring.MatchType) align.Piece {
	return align.Piece{StepA: stepA, StepB: stepB, Type: mt}
}

func TestShortFormMergesRuns(t *testing.T) {
	path := []align.Piece{
		piece(1, 1, scoring.FullIdentity),
		piece(1, 1, scoring.FullIdentity),
		piece(1, 1, scoring.FullIdentity),
		piece(1, 1, scoring.Mismatch),
	}
	assert.Equal(t, "3=1X", shortForm(path))
}

func TestShortFormOmitsColonWhenStepsEqual(t *testing.T) {
	path := []align.Piece{piece(2, 2, scoring.Rotation)}
	assert.Equal(t, "2r", shortForm(path))
}

func TestShortFormKeepsColonWhenStepsDiffer(t *testing.T) {
	path := []align.Piece{piece(1, 2, scoring.Isobaric)}
	assert.Equal(t, "1:2i", shortForm(path))
}

func TestShortFormGapTags(t *testing.T) {
	insertion := piece(0, 1, scoring.Gap)
	deletion := piece(1, 0, scoring.Gap)
	assert.Equal(t, "1I", shortForm([]align.Piece{insertion}))
	assert.Equal(t, "1D", shortForm([]align.Piece{deletion}))
}

func TestShortFormWorkedExample(t *testing.T) {
	// "1=1:2i2:1i2=" means one identity, a 1->2 isobaric, a 2->1
	// isobaric, two identities.
	path := []align.Piece{
		piece(1, 1, scoring.FullIdentity),
		piece(1, 2, scoring.Isobaric),
		piece(2, 1, scoring.Isobaric),
		piece(1, 1, scoring.FullIdentity),
		piece(1, 1, scoring.FullIdentity),
	}
	assert.Equal(t, "1=1:2i2:1i2=", shortForm(path))
}
