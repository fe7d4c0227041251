package alignstats

import (
	"strconv"
	"strings"

	"github.com/snijderlab/pepalign-go/internal/align"
)

// Short renders the path as a CIGAR-like short form: each piece as
// "<step_a>[:<step_b>]<tag>", with consecutive identical (tag, step_a,
// step_b) pieces merged into one token whose step counts are the sum
// across the run (e.g. three single-residue identities become "3=").
func (a *Alignment) Short() string {
	return shortForm(a.Path)
}

func shortForm(path []align.Piece) string {
	var b strings.Builder
	i := 0
	for i < len(path) {
		j := i + 1
		for j < len(path) && path[j].StepA == path[i].StepA && path[j].StepB == path[i].StepB && path[j].Type == path[i].Type {
			j++
		}
		run := j - i
		writeToken(&b, path[i], run)
		i = j
	}
	return b.String()
}

func writeToken(b *strings.Builder, p align.Piece, run int) {
	stepA := int(p.StepA) * run
	stepB := int(p.StepB) * run
	switch {
	case p.IsGapInA():
		b.WriteString(strconv.Itoa(stepB))
	case p.IsGapInB():
		b.WriteString(strconv.Itoa(stepA))
	case stepA == stepB:
		b.WriteString(strconv.Itoa(stepA))
	default:
		b.WriteString(strconv.Itoa(stepA))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(stepB))
	}
	b.WriteByte(tag(p))
}

func tag(p align.Piece) byte {
	switch {
	case p.IsGapInA():
		return 'I'
	case p.IsGapInB():
		return 'D'
	default:
		return p.Type.ShortTag()
	}
}
