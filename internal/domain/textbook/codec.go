package textbook

import (
	"fmt"
	"math/bits"
	"slices"
)

const (
	// Radix of the message encoding: space plus the 26 letters.
	Radix = 27

	// MaxMessageLength is the longest message guaranteed to encode into 64 bits.
	MaxMessageLength = 13
)

// Encode maps text onto a base-27 integer, most significant character first.
// Space is digit 0 and letters are case-folded to 1..26. Values that do not fit
// 64 bits are reported as ErrNumericOverflow.
func Encode(text string) (uint64, error) {
	var sum uint64
	for i := 0; i < len(text); i++ {
		d, err := digit(text[i])
		if err != nil {
			return 0, err
		}

		hi, lo := bits.Mul64(sum, Radix)
		if hi != 0 {
			return 0, fmt.Errorf("%w: message %q does not fit 64 bits", ErrNumericOverflow, text)
		}
		var carry uint64
		sum, carry = bits.Add64(lo, d, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: message %q does not fit 64 bits", ErrNumericOverflow, text)
		}
	}
	return sum, nil
}

// EncodeWrapping is Encode with the overflow check removed: the accumulator
// wraps modulo 2^64 like a fixed-width C accumulator.
func EncodeWrapping(text string) (uint64, error) {
	var sum uint64
	for i := 0; i < len(text); i++ {
		d, err := digit(text[i])
		if err != nil {
			return 0, err
		}
		sum = sum*Radix + d
	}
	return sum, nil
}

// Decode is the inverse of Encode. Leading spaces are not representable, so
// Decode(0) is the empty string.
func Decode(v uint64) string {
	var out []byte
	for v != 0 {
		d := byte(v % Radix)
		if d == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, 'A'+d-1)
		}
		v /= Radix
	}
	slices.Reverse(out)
	return string(out)
}

func digit(c byte) (uint64, error) {
	switch {
	case c == ' ':
		return 0, nil
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 1, nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 1, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidCharacter, c)
	}
}
