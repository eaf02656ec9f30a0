package textbook

import (
	"fmt"
	"math"
)

// Bezout holds gcd(a, b) together with coefficients satisfying a*S + b*T = GCD.
type Bezout struct {
	GCD  uint64
	S, T int64
}

// ExtendedGCD runs the recursive extended Euclidean algorithm.
// Both arguments must be below 2^63 so the coefficients fit an int64.
func ExtendedGCD(a, b uint64) Bezout {
	if b == 0 {
		return Bezout{GCD: a, S: 1, T: 0}
	}

	r := a % b
	next := ExtendedGCD(b, r)
	q := int64((a - r) / b)

	return Bezout{
		GCD: next.GCD,
		S:   next.T,
		T:   next.S - next.T*q,
	}
}

// ModInverse returns the inverse of e modulo phi, normalized into [0, phi).
func ModInverse(e, phi uint64) (uint64, error) {
	if phi == 0 {
		return 0, fmt.Errorf("%w: modulus of inverse must be positive", ErrDegenerateInput)
	}
	if e > math.MaxInt64 || phi > math.MaxInt64 {
		return 0, fmt.Errorf("%w: operands of inverse must be below 2^63", ErrDegenerateInput)
	}

	bz := ExtendedGCD(e, phi)
	if bz.GCD != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrInvalidExponent, e, phi, bz.GCD)
	}

	s := bz.S % int64(phi)
	if s < 0 {
		s += int64(phi)
	}
	return uint64(s), nil
}
