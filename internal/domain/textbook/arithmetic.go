package textbook

import "math/bits"

// Arithmetic abstracts the one operation whose precision matters: the product of
// two residues reduced modulo m.
type Arithmetic interface {
	MulMod(a, b, m uint64) uint64
}

// Exact computes products with a full 128-bit intermediate and never overflows.
type Exact struct{}

// MulMod returns a*b mod m. m must be non-zero.
func (Exact) MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	return bits.Rem64(hi, lo, m)
}

// Wrapping computes products in a single 64-bit word, silently discarding the
// high half like the classic C implementation did. Results are only correct
// while a*b < 2^64.
type Wrapping struct{}

// MulMod returns (a*b mod 2^64) mod m.
func (Wrapping) MulMod(a, b, m uint64) uint64 {
	return (a * b) % m
}

// ModPow returns base^exponent mod modulus using exact arithmetic.
func ModPow(base, exponent, modulus uint64) uint64 {
	return ModPowWith(Exact{}, base, exponent, modulus)
}

// ModPowWith returns base^exponent mod modulus by square-and-multiply, using
// arith for every product. A base congruent to zero yields zero without looping.
// modulus must be positive.
func ModPowWith(arith Arithmetic, base, exponent, modulus uint64) uint64 {
	base %= modulus
	if base == 0 {
		return 0
	}

	result := uint64(1) % modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = arith.MulMod(result, base, modulus)
		}
		exponent >>= 1
		base = arith.MulMod(base, base, modulus)
	}
	return result
}

// mulOverflows reports whether a*b does not fit in 64 bits.
func mulOverflows(a, b uint64) bool {
	hi, _ := bits.Mul64(a, b)
	return hi != 0
}
