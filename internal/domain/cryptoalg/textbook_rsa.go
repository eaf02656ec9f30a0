package cryptoalg

import "github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"

// TextbookRSAProcessor handles word-sized, unpadded RSA operations.
// Messages are strings of letters and spaces encoded in base 27.
type TextbookRSAProcessor interface {
	// GenerateKeys samples two primes and derives a keypair. chooser proposes the
	// public exponent; nil selects one automatically.
	GenerateKeys(chooser textbook.ExponentChooser) (*textbook.Keypair, error)

	// Encrypt transforms a plaintext message under the public key.
	Encrypt(message string, publicKey textbook.PublicKey) (string, error)

	// Decrypt transforms a ciphertext message under the private key.
	Decrypt(ciphertext string, privateKey textbook.PrivateKey) (string, error)

	PrimalityTester

	// SavePrivateKeyToFile saves the whole keypair to a PEM-encoded file.
	SavePrivateKeyToFile(keypair *textbook.Keypair, filename string) error

	// SavePublicKeyToFile saves the public key to a PEM-encoded file.
	SavePublicKeyToFile(publicKey textbook.PublicKey, filename string) error

	// ReadPrivateKey reads a keypair from a PEM-encoded file.
	ReadPrivateKey(privateKeyPath string) (*textbook.Keypair, error)

	// ReadPublicKey reads a public key from a PEM-encoded file.
	ReadPublicKey(publicKeyPath string) (textbook.PublicKey, error)
}

// PrimalityTester probabilistically tests integers for primality.
type PrimalityTester interface {
	// IsPrime runs Miller-Rabin on n. rounds < 1 selects the configured default.
	IsPrime(n uint64, rounds int) bool
}
