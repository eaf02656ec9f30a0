//go:build unit
// +build unit

package textbook

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBezout(t *testing.T, a, b uint64, bz Bezout) {
	t.Helper()

	lhs := new(big.Int).Mul(new(big.Int).SetUint64(a), big.NewInt(bz.S))
	lhs.Add(lhs, new(big.Int).Mul(new(big.Int).SetUint64(b), big.NewInt(bz.T)))
	assert.Equal(t, 0, lhs.Cmp(new(big.Int).SetUint64(bz.GCD)), "a*s + b*t != g for (%d, %d)", a, b)

	want := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	assert.Equal(t, want.Uint64(), bz.GCD)
}

func TestExtendedGCD_SmallPairs(t *testing.T) {
	for a := uint64(1); a <= 60; a++ {
		for b := uint64(1); b <= 60; b++ {
			assertBezout(t, a, b, ExtendedGCD(a, b))
		}
	}
}

func TestExtendedGCD_LargePairs(t *testing.T) {
	rng := NewSource(99)
	for i := 0; i < 500; i++ {
		a := rng.Uint64N(1 << 62)
		b := rng.Uint64N(1<<62) + 1
		assertBezout(t, a, b, ExtendedGCD(a, b))
	}
}

func TestExtendedGCD_ZeroSecondArgument(t *testing.T) {
	assert.Equal(t, Bezout{GCD: 42, S: 1, T: 0}, ExtendedGCD(42, 0))
	assert.Equal(t, Bezout{GCD: 0, S: 1, T: 0}, ExtendedGCD(0, 0))
}

func TestModInverse(t *testing.T) {
	t.Run("textbook example", func(t *testing.T) {
		bz := ExtendedGCD(17, 3120)
		assert.Equal(t, uint64(1), bz.GCD)
		assert.Negative(t, bz.S)

		s, err := ModInverse(17, 3120)
		require.NoError(t, err)
		assert.Equal(t, uint64(2753), s)
	})

	t.Run("not coprime", func(t *testing.T) {
		_, err := ModInverse(3120, 3120)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidExponent))

		_, err = ModInverse(6, 3120)
		assert.ErrorIs(t, err, ErrInvalidExponent)
	})

	t.Run("zero modulus", func(t *testing.T) {
		_, err := ModInverse(3, 0)
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("inverse property", func(t *testing.T) {
		const phi = 3120
		for e := uint64(2); e < phi; e++ {
			s, err := ModInverse(e, phi)
			if err != nil {
				continue
			}
			assert.Less(t, s, uint64(phi))
			assert.Equal(t, uint64(1), e*s%phi)
		}
	})
}
