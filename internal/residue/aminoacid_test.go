package residue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAminoAcid(t *testing.T) {
	t.Run("uppercase", func(t *testing.T) {
		aa, err := ParseAminoAcid('A')
		require.NoError(t, err)
		assert.Equal(t, Ala, aa)
	})

	t.Run("lowercase is case-insensitive", func(t *testing.T) {
		aa, err := ParseAminoAcid('a')
		require.NoError(t, err)
		assert.Equal(t, Ala, aa)
	})

	t.Run("non-canonical U and O", func(t *testing.T) {
		u, err := ParseAminoAcid('U')
		require.NoError(t, err)
		assert.Equal(t, Sec, u)

		o, err := ParseAminoAcid('O')
		require.NoError(t, err)
		assert.Equal(t, Pyl, o)
	})

	t.Run("invalid symbol", func(t *testing.T) {
		_, err := ParseAminoAcid('1')
		require.Error(t, err)
		var target *MatrixIndexOutOfRangeError
		assert.ErrorAs(t, err, &target)
	})
}

func TestAminoAcidSymbol(t *testing.T) {
	for i := 0; i < TotalAminoAcids; i++ {
		aa := AminoAcid(i)
		parsed, err := ParseAminoAcid(aa.Symbol())
		require.NoError(t, err)
		assert.Equal(t, aa, parsed)
	}
}

func TestCanonicallyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b AminoAcid
		want bool
	}{
		{"identical", Ala, Ala, true},
		{"distinct canonical", Ala, Arg, false},
		{"B matches N", Asx, Asn, true},
		{"B matches D", Asx, Asp, true},
		{"B does not match Q", Asx, Gln, false},
		{"J matches L", Xle, Leu, true},
		{"J matches I", Xle, Ile, true},
		{"Z matches Q", Glx, Gln, true},
		{"Z matches E", Glx, Glu, true},
		{"X matches anything", Xaa, Trp, true},
		{"anything matches X", Lys, Xaa, true},
		{"symmetric B/N reversed", Asn, Asx, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicallyEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, CanonicallyEqual(tt.b, tt.a), "must be symmetric")
		})
	}
}
