//go:build unit
// +build unit

package textbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func trialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime_AgreesWithTrialDivision(t *testing.T) {
	rng := NewSource(2024)
	for n := uint64(2); n <= 10000; n++ {
		assert.Equal(t, trialDivision(n), IsPrime(n, 20, rng), "n=%d", n)
	}
}

func TestIsPrime_ShortCircuits(t *testing.T) {
	rng := NewSource(1)

	assert.False(t, IsPrime(0, 10, rng))
	assert.False(t, IsPrime(1, 10, rng))
	assert.True(t, IsPrime(2, 10, rng))
	assert.True(t, IsPrime(3, 10, rng))
	assert.False(t, IsPrime(4, 10, rng))
	assert.False(t, IsPrime(1<<40, 10, rng))
}

func TestIsPrime_LargeValues(t *testing.T) {
	rng := NewSource(3)

	tests := []struct {
		n     uint64
		prime bool
	}{
		{2147483647, true},               // 2^31 - 1
		{2305843009213693951, true},      // 2^61 - 1
		{18446744073709551557, true},     // largest 64-bit prime
		{4294967297, false},              // 641 * 6700417
		{2147483647 * 2147483629, false}, // product of two large primes
		{3215031751, false},              // strong pseudoprime to bases 2, 3, 5, 7
	}

	for _, tt := range tests {
		assert.Equal(t, tt.prime, IsPrime(tt.n, 20, rng), "n=%d", tt.n)
	}
}

func TestIsPrime_NonPositiveRoundsStillTests(t *testing.T) {
	rng := NewSource(5)
	// 9 has no strong liars in [2, 7], so a single trial always rejects it.
	assert.False(t, IsPrime(9, 0, rng))
	assert.True(t, IsPrime(13, -1, rng))
}

func TestMillerRabin_PrimeAlwaysPasses(t *testing.T) {
	rng := NewSource(11)
	// 97 - 1 = 2^5 * 3
	for i := 0; i < 100; i++ {
		assert.True(t, millerRabin(97, 3, 5, rng))
	}
}
