package scoring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/snijderlab/pepalign-go/internal/residue"
)

// ParseMatrix reads a 26x26 whitespace-separated signed-integer matrix in
// the row/column order residue.AminoAcid defines. Lines beginning with
// '#' are comments and are skipped, as are blank lines.
func ParseMatrix(r io.Reader) (Matrix, error) {
	var m Matrix
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != residue.TotalAminoAcids {
			return Matrix{}, fmt.Errorf("scoring: row %d has %d fields, want %d", row, len(fields), residue.TotalAminoAcids)
		}
		if row >= residue.TotalAminoAcids {
			return Matrix{}, fmt.Errorf("scoring: too many data rows, want %d", residue.TotalAminoAcids)
		}
		for col, f := range fields {
			v, err := strconv.ParseInt(f, 10, 8)
			if err != nil {
				return Matrix{}, fmt.Errorf("scoring: row %d col %d: %w", row, col, err)
			}
			m[row][col] = int8(v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Matrix{}, err
	}
	if row != residue.TotalAminoAcids {
		return Matrix{}, fmt.Errorf("scoring: got %d data rows, want %d", row, residue.TotalAminoAcids)
	}
	return m, nil
}

// WriteMatrix serialises a Matrix in the format ParseMatrix accepts, one
// amino acid's row per line with its single-letter code as a comment.
func WriteMatrix(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)
	for a := residue.AminoAcid(0); int(a) < residue.TotalAminoAcids; a++ {
		if _, err := fmt.Fprintf(bw, "# %c\n", a.Symbol()); err != nil {
			return err
		}
		for b := residue.AminoAcid(0); int(b) < residue.TotalAminoAcids; b++ {
			sep := " "
			if b == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(bw, "%s%d", sep, m[a][b]); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
