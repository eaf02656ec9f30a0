package textbook

import "fmt"

// Transform encrypts or decrypts text under (key, modulus): calling it with
// (plaintext, e, n) encrypts, calling it with (ciphertext, s, n) decrypts.
// The encoded message must be smaller than the modulus.
func Transform(text string, key, modulus uint64) (string, error) {
	if modulus < 2 {
		return "", fmt.Errorf("%w: modulus must be at least 2", ErrDegenerateInput)
	}

	m, err := Encode(text)
	if err != nil {
		return "", err
	}
	if m >= modulus {
		return "", fmt.Errorf("%w: %d >= %d", ErrMessageTooLarge, m, modulus)
	}

	return Decode(ModPow(m, key, modulus)), nil
}

// TransformWrapping is Transform without any range checks: the message
// accumulator and every product wrap at 2^64, and messages at or above the
// modulus are silently reduced. Round trips are only guaranteed while the
// encoded message is smaller than the modulus and n^2 fits 64 bits.
func TransformWrapping(text string, key, modulus uint64) (string, error) {
	if modulus < 2 {
		return "", fmt.Errorf("%w: modulus must be at least 2", ErrDegenerateInput)
	}

	m, err := EncodeWrapping(text)
	if err != nil {
		return "", err
	}

	return Decode(ModPowWith(Wrapping{}, m, key, modulus)), nil
}
