package textbook

import (
	"fmt"
	"math/bits"
)

const (
	// DefaultExponent is the first public exponent AutoExponent proposes.
	DefaultExponent = 65537

	// DefaultMaxPrime bounds prime candidates so that n stays below 2^62.
	DefaultMaxPrime = 1<<31 - 1

	// MaxPrimeLimit is the largest accepted candidate bound. Beyond it phi(n)
	// no longer fits the signed Bezout coefficients.
	MaxPrimeLimit = 1 << 31

	minPrimeCandidate = 5
)

// PublicKey is the (n, e) half of a keypair.
type PublicKey struct {
	N, E uint64
}

// PrivateKey is the (n, s) half of a keypair.
type PrivateKey struct {
	N, S uint64
}

// Keypair holds both primes, the modulus, the totient and both exponents.
type Keypair struct {
	P, Q uint64
	N    uint64
	Phi  uint64
	E    uint64
	S    uint64
}

// PublicKey returns the encryption half of the keypair.
func (k Keypair) PublicKey() PublicKey {
	return PublicKey{N: k.N, E: k.E}
}

// PrivateKey returns the decryption half of the keypair.
func (k Keypair) PrivateKey() PrivateKey {
	return PrivateKey{N: k.N, S: k.S}
}

// Validate checks the structural invariants of the keypair, most importantly
// e*s = 1 (mod phi).
func (k Keypair) Validate() error {
	if k.P == k.Q {
		return fmt.Errorf("%w: p and q must differ", ErrDegenerateInput)
	}
	if k.P < 2 || k.Q < 2 {
		return fmt.Errorf("%w: p and q must be at least 2", ErrDegenerateInput)
	}
	if mulOverflows(k.P, k.Q) || k.P*k.Q != k.N {
		return fmt.Errorf("%w: n != p*q", ErrDegenerateInput)
	}
	hi, phi := bits.Mul64(k.P-1, k.Q-1)
	if hi != 0 || phi != k.Phi {
		return fmt.Errorf("%w: phi != (p-1)*(q-1)", ErrDegenerateInput)
	}
	if k.E <= 1 || k.E >= k.Phi {
		return fmt.Errorf("%w: e must lie in (1, phi)", ErrInvalidExponent)
	}
	if k.S >= k.Phi {
		return fmt.Errorf("%w: s must lie in [0, phi)", ErrDegenerateInput)
	}
	if (Exact{}).MulMod(k.E, k.S, k.Phi) != 1%k.Phi {
		return fmt.Errorf("%w: e*s mod phi != 1", ErrInvalidExponent)
	}
	return nil
}

// ExponentChooser proposes a public exponent for phi. The generator calls it
// with attempt 0, 1, 2, ... until a proposal is accepted, or until it returns
// an error.
type ExponentChooser func(phi uint64, attempt int) (uint64, error)

// AutoExponent proposes DefaultExponent first and then the odd numbers 3, 5, 7, ...
func AutoExponent() ExponentChooser {
	return func(_ uint64, attempt int) (uint64, error) {
		if attempt == 0 {
			return DefaultExponent, nil
		}
		return uint64(2*attempt + 1), nil
	}
}

// FixedExponent proposes e once. If it is rejected the generator fails with
// ErrInvalidExponent instead of retrying. An e outside (1, phi) is reported
// as a range error; otherwise the rejection means gcd(e, phi) != 1.
func FixedExponent(e uint64) ExponentChooser {
	return func(phi uint64, attempt int) (uint64, error) {
		if e <= 1 || e >= phi {
			return 0, fmt.Errorf("%w: e=%d outside (1, %d)", ErrInvalidExponent, e, phi)
		}
		if attempt > 0 {
			return 0, fmt.Errorf("%w: e=%d is not coprime to phi=%d", ErrInvalidExponent, e, phi)
		}
		return e, nil
	}
}

// KeyGenerator derives keypairs from random primes.
type KeyGenerator struct {
	Rand     RandomSource
	Rounds   int
	MaxPrime uint64
	Chooser  ExponentChooser
}

// NewKeyGenerator returns a generator with the default rounds, prime bound and
// automatic exponent selection.
func NewKeyGenerator(rng RandomSource) *KeyGenerator {
	return &KeyGenerator{
		Rand:     rng,
		Rounds:   DefaultRounds,
		MaxPrime: DefaultMaxPrime,
		Chooser:  AutoExponent(),
	}
}

// GenerateKeypair generates a keypair with default settings.
func GenerateKeypair(rng RandomSource) (Keypair, error) {
	return NewKeyGenerator(rng).Generate()
}

// Generate samples two distinct primes and derives a keypair from them.
// Prime sampling retries until it succeeds; it has no upper bound on attempts.
func (g *KeyGenerator) Generate() (Keypair, error) {
	if g.Rand == nil {
		return Keypair{}, fmt.Errorf("%w: random source is required", ErrDegenerateInput)
	}
	if g.MaxPrime < 7 || g.MaxPrime > MaxPrimeLimit {
		return Keypair{}, fmt.Errorf("%w: max prime %d outside [7, %d]", ErrDegenerateInput, g.MaxPrime, uint64(MaxPrimeLimit))
	}

	chooser := g.Chooser
	if chooser == nil {
		chooser = AutoExponent()
	}

	p := g.samplePrime(0)
	q := g.samplePrime(p)

	kp := Keypair{
		P:   p,
		Q:   q,
		N:   p * q,
		Phi: (p - 1) * (q - 1),
	}

	for attempt := 0; ; attempt++ {
		e, err := chooser(kp.Phi, attempt)
		if err != nil {
			return Keypair{}, err
		}
		if e <= 1 || e >= kp.Phi {
			continue
		}
		s, err := ModInverse(e, kp.Phi)
		if err != nil {
			continue
		}
		kp.E, kp.S = e, s
		break
	}

	return kp, nil
}

// samplePrime draws candidates in [minPrimeCandidate, MaxPrime] until one is
// prime and differs from exclude.
func (g *KeyGenerator) samplePrime(exclude uint64) uint64 {
	span := g.MaxPrime - minPrimeCandidate + 1
	for {
		c := g.Rand.Uint64N(span) + minPrimeCandidate
		if c != exclude && IsPrime(c, g.Rounds, g.Rand) {
			return c
		}
	}
}
