// Package textbook implements the arithmetic kernel of a word-sized, unpadded
// ("textbook") RSA cryptosystem: modular exponentiation, the extended Euclidean
// algorithm, Miller-Rabin primality testing, a base-27 text codec and the key
// generation and transform operations built on top of them.
//
// The kernel is intentionally insecure. Keys fit in a single 64-bit word and
// messages are encrypted without padding. It exists for teaching purposes.
package textbook
