package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snijderlab/pepalign-go/pkg/pepalign"
)

// ResidueInput is one wire-format residue: a one-letter amino-acid code
// plus its monoisotopic mass, supplied directly in the request body.
type ResidueInput struct {
	AA   string  `json:"aa"`
	Mass float64 `json:"mass"`
}

// AlignRequest is the body of POST /api/align.
type AlignRequest struct {
	SequenceA    []ResidueInput `json:"sequenceA"`
	SequenceB    []ResidueInput `json:"sequenceB"`
	Matrix       string         `json:"matrix"`
	TolerancePPM float64        `json:"tolerancePpm"`
	AlignType    string         `json:"alignType"`
	Steps        int            `json:"steps"`
}

// AlignResponse is the body of a successful POST /api/align response.
type AlignResponse struct {
	Score           int32   `json:"score"`
	NormalisedScore float64 `json:"normalisedScore"`
	Length          int     `json:"length"`
	Identity        int     `json:"identity"`
	Similarity      int     `json:"similarity"`
	Gaps            int     `json:"gaps"`
	GapFraction     float64 `json:"gapFraction"`
	PPM             float64 `json:"ppm"`
	ShortForm       string  `json:"shortForm"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func toSequence(units []ResidueInput) (pepalign.Sequence, error) {
	seq := make(pepalign.Sequence, len(units))
	for i, u := range units {
		if len(u.AA) != 1 {
			return nil, fmt.Errorf("residue %d: aa must be a single letter, got %q", i, u.AA)
		}
		unit, err := pepalign.NewResidue(u.AA[0], u.Mass)
		if err != nil {
			return nil, fmt.Errorf("residue %d: %w", i, err)
		}
		seq[i] = unit
	}
	return seq, nil
}

func parseAlignType(s string) (pepalign.AlignType, error) {
	switch s {
	case "", "global":
		return pepalign.Global(), nil
	case "local":
		return pepalign.Local(), nil
	case "semiGlobalFreeStart":
		return pepalign.SemiGlobalFreeStart(), nil
	case "semiGlobalFreeEnd":
		return pepalign.SemiGlobalFreeEnd(), nil
	default:
		return pepalign.AlignType{}, fmt.Errorf("unknown alignType %q", s)
	}
}

// AlignHandler handles POST /api/align: decodes two in-memory residue
// sequences, runs the alignment engine, and returns its statistics. No
// file I/O.
func AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	seqA, err := toSequence(req.SequenceA)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("sequenceA: %w", err))
		return
	}
	seqB, err := toSequence(req.SequenceB)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("sequenceB: %w", err))
		return
	}

	matrixName := req.Matrix
	if matrixName == "" {
		matrixName = "BLOSUM62"
	}
	matrix, ok := pepalign.NamedMatrix(matrixName)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown matrix %q", req.Matrix))
		return
	}

	tolerancePPM := req.TolerancePPM
	if tolerancePPM <= 0 {
		tolerancePPM = 10
	}
	tol, err := pepalign.RelativeTolerance(tolerancePPM)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("tolerancePpm: %w", err))
		return
	}

	at, err := parseAlignType(req.AlignType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := []pepalign.AlignOption{}
	if req.Steps > 0 {
		opts = append(opts, pepalign.WithSteps(req.Steps))
	}

	alignment, err := pepalign.Align(seqA, seqB, matrix, tol, at, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignResponse{
		Score:           alignment.Score(),
		NormalisedScore: alignment.NormalisedScore(),
		Length:          alignment.Length(),
		Identity:        alignment.Identity(),
		Similarity:      alignment.Similarity(),
		Gaps:            alignment.GapCount(),
		GapFraction:     alignment.GapFraction(),
		PPM:             alignment.PPM(),
		ShortForm:       alignment.Short(),
	})
}
