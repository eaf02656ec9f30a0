//go:build unit
// +build unit

package textbook

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected uint64
	}{
		{"empty", "", 0},
		{"single letter", "A", 1},
		{"last letter", "Z", 26},
		{"two letters", "AB", 1*27 + 2},
		{"embedded space", "A B", 1*27*27 + 0*27 + 2},
		{"lowercase folds", "bk", 65},
		{"longest guaranteed", strings.Repeat("Z", MaxMessageLength), 4052555153018976266},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode("HELLO, WORLD")
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = Encode("ABC1")
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = Encode(strings.Repeat("Z", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrNumericOverflow)
}

func TestEncodeWrapping_WrapsInsteadOfFailing(t *testing.T) {
	text := strings.Repeat("Z", MaxMessageLength+1)

	got, err := EncodeWrapping(text)
	require.NoError(t, err)

	// 27^14 - 1 reduced modulo 2^64
	want := new(big.Int).Exp(big.NewInt(27), big.NewInt(14), nil)
	want.Sub(want, big.NewInt(1))
	want.Mod(want, new(big.Int).Lsh(big.NewInt(1), 64))
	assert.Equal(t, want.Uint64(), got)

	short, err := EncodeWrapping("HELLO")
	require.NoError(t, err)
	exact, err := Encode("HELLO")
	require.NoError(t, err)
	assert.Equal(t, exact, short)

	_, err = EncodeWrapping("HI!")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "", Decode(0))
	assert.Equal(t, "A", Decode(1))
	assert.Equal(t, "BK", Decode(65))
	assert.Equal(t, "CVI", Decode(2790))
	assert.Equal(t, "A B", Decode(731))
}

func TestCodec_RoundTrip(t *testing.T) {
	messages := []string{
		"A",
		"HELLO",
		"HELLO WORLD",
		"ATTACK AT DAWN",
		"Z Z Z",
		"THE QUICK",
		strings.Repeat("Z", MaxMessageLength),
	}

	for _, msg := range messages {
		v, err := Encode(msg)
		if err != nil {
			// 14 characters may exceed the word; only the overflow error is acceptable.
			require.ErrorIs(t, err, ErrNumericOverflow)
			continue
		}
		assert.Equal(t, msg, Decode(v))
	}
}

func TestCodec_RoundTripRandom(t *testing.T) {
	const alphabet = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rng := NewSource(27)

	for i := 0; i < 1000; i++ {
		length := int(rng.Uint64N(MaxMessageLength)) + 1
		var sb strings.Builder
		// leading spaces are not representable, so the first digit is a letter
		sb.WriteByte(alphabet[rng.Uint64N(26)+1])
		for j := 1; j < length; j++ {
			sb.WriteByte(alphabet[rng.Uint64N(27)])
		}
		msg := sb.String()

		v, err := Encode(msg)
		require.NoError(t, err)
		assert.Equal(t, msg, Decode(v))
	}
}

func TestCodec_LeadingSpacesAreLost(t *testing.T) {
	v, err := Encode("  HI")
	require.NoError(t, err)
	assert.Equal(t, "HI", Decode(v))
}
