package textbook

import "math/rand/v2"

// DefaultRounds is the number of Miller-Rabin trials used during key generation.
const DefaultRounds = 10

// RandomSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Uint64N(n uint64) uint64
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IsPrime runs up to rounds Miller-Rabin trials against n. Composites may pass
// with a probability shrinking in rounds; primes always pass. rounds below one
// are treated as one.
func IsPrime(n uint64, rounds int, rng RandomSource) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}

	// n-1 = 2^k * m with m odd
	m := n - 1
	k := uint64(0)
	for m%2 == 0 {
		m /= 2
		k++
	}

	if rounds < 1 {
		rounds = 1
	}
	for i := 0; i < rounds; i++ {
		if !millerRabin(n, m, k, rng) {
			return false
		}
	}
	return true
}

// millerRabin runs a single witness trial. n must be odd and greater than 3.
func millerRabin(n, m, k uint64, rng RandomSource) bool {
	a := rng.Uint64N(n-3) + 2

	b := ModPow(a, m, n)
	if b == 1 || b == n-1 {
		return true
	}

	for j := uint64(1); j <= k; j++ {
		b = Exact{}.MulMod(b, b, n)
		if b == 1 {
			return false
		}
		if b == n-1 {
			return true
		}
	}
	return false
}
