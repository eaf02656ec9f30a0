package textbook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExponent is returned when a public exponent is not coprime to the totient
	// or lies outside (1, phi).
	ErrInvalidExponent = errors.New("textbook: invalid public exponent")

	// ErrNumericOverflow is returned when a value does not fit the 64-bit word or the modulus.
	ErrNumericOverflow = errors.New("textbook: numeric overflow")

	// ErrMessageTooLarge is returned when an encoded message is not smaller than the modulus.
	ErrMessageTooLarge = fmt.Errorf("%w: encoded message exceeds modulus", ErrNumericOverflow)

	// ErrInvalidCharacter is returned when a message contains something other than letters and spaces.
	ErrInvalidCharacter = errors.New("textbook: message may only contain letters and spaces")

	// ErrDegenerateInput is returned for arguments outside the range an operation is defined on.
	ErrDegenerateInput = errors.New("textbook: degenerate input")
)
