package cryptography

import (
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// PEM block types
const (
	PrivateKeyBlockType = "TEXTBOOK RSA PRIVATE KEY"
	PublicKeyBlockType  = "TEXTBOOK RSA PUBLIC KEY"
)

type privateKeyDER struct {
	N, E, S, P, Q, Phi *big.Int
}

type publicKeyDER struct {
	N, E *big.Int
}

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	settings *config.KeygenSettings
	rng      textbook.RandomSource
	logger   logger.Logger

	// generation mutates the shared generator's chooser
	genMu sync.Mutex
	gen   *textbook.KeyGenerator
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor
func NewTextbookRSAProcessor(settings *config.KeygenSettings, logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid keygen settings: %w", err)
	}

	rng := newLockedSource(settings.Seed)
	gen := textbook.NewKeyGenerator(rng)
	gen.Rounds = settings.Rounds
	gen.MaxPrime = settings.MaxPrime

	return &textbookRSAProcessor{
		settings: settings,
		rng:      rng,
		logger:   logger.With("component", "textbook-rsa-processor"),
		gen:      gen,
	}, nil
}

// GenerateKeys samples two primes and derives a keypair.
// This call retries prime candidates until it succeeds.
func (r *textbookRSAProcessor) GenerateKeys(chooser textbook.ExponentChooser) (*textbook.Keypair, error) {
	if chooser == nil {
		chooser = textbook.AutoExponent()
	}

	r.genMu.Lock()
	r.gen.Chooser = chooser
	kp, err := r.gen.Generate()
	r.genMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to generate textbook RSA keys: %w", err)
	}

	r.logger.Info("Generated textbook RSA keypair with modulus ", kp.N)
	return &kp, nil
}

// Encrypt transforms message under the public key.
func (r *textbookRSAProcessor) Encrypt(message string, publicKey textbook.PublicKey) (string, error) {
	ciphertext, err := r.transform(message, publicKey.E, publicKey.N)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt message: %w", err)
	}

	r.logger.Info("Textbook RSA encryption succeeded")
	return ciphertext, nil
}

// Decrypt transforms ciphertext under the private key.
func (r *textbookRSAProcessor) Decrypt(ciphertext string, privateKey textbook.PrivateKey) (string, error) {
	plaintext, err := r.transform(ciphertext, privateKey.S, privateKey.N)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt message: %w", err)
	}

	r.logger.Info("Textbook RSA decryption succeeded")
	return plaintext, nil
}

func (r *textbookRSAProcessor) transform(text string, key, modulus uint64) (string, error) {
	if r.settings.Faithful {
		return textbook.TransformWrapping(text, key, modulus)
	}
	return textbook.Transform(text, key, modulus)
}

// IsPrime runs Miller-Rabin against n, falling back to the configured rounds.
func (r *textbookRSAProcessor) IsPrime(n uint64, rounds int) bool {
	if rounds < 1 {
		rounds = r.settings.Rounds
	}
	prime := textbook.IsPrime(n, rounds, r.rng)
	r.logger.Debug("Primality of ", n, ": ", prime)
	return prime
}

// SavePrivateKeyToFile saves the keypair to a PEM-encoded file.
func (r *textbookRSAProcessor) SavePrivateKeyToFile(keypair *textbook.Keypair, filename string) error {
	if keypair == nil {
		return errors.New("keypair cannot be nil")
	}

	der, err := asn1.Marshal(privateKeyDER{
		N:   new(big.Int).SetUint64(keypair.N),
		E:   new(big.Int).SetUint64(keypair.E),
		S:   new(big.Int).SetUint64(keypair.S),
		P:   new(big.Int).SetUint64(keypair.P),
		Q:   new(big.Int).SetUint64(keypair.Q),
		Phi: new(big.Int).SetUint64(keypair.Phi),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}

	if err := writePEM(filename, &pem.Block{Type: PrivateKeyBlockType, Bytes: der}); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved textbook RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the public key to a PEM-encoded file.
func (r *textbookRSAProcessor) SavePublicKeyToFile(publicKey textbook.PublicKey, filename string) error {
	der, err := asn1.Marshal(publicKeyDER{
		N: new(big.Int).SetUint64(publicKey.N),
		E: new(big.Int).SetUint64(publicKey.E),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	if err := writePEM(filename, &pem.Block{Type: PublicKeyBlockType, Bytes: der}); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved textbook RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads a keypair from a PEM-encoded file and checks its invariants.
func (r *textbookRSAProcessor) ReadPrivateKey(privateKeyPath string) (*textbook.Keypair, error) {
	block, err := readPEM(privateKeyPath, PrivateKeyBlockType)
	if err != nil {
		return nil, err
	}

	var der privateKeyDER
	if _, err := asn1.Unmarshal(block.Bytes, &der); err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	values, err := toUint64s(der.N, der.E, der.S, der.P, der.Q, der.Phi)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	kp := &textbook.Keypair{N: values[0], E: values[1], S: values[2], P: values[3], Q: values[4], Phi: values[5]}
	if err := kp.Validate(); err != nil {
		return nil, fmt.Errorf("private key is inconsistent: %w", err)
	}

	return kp, nil
}

// ReadPublicKey reads a public key from a PEM-encoded file.
func (r *textbookRSAProcessor) ReadPublicKey(publicKeyPath string) (textbook.PublicKey, error) {
	block, err := readPEM(publicKeyPath, PublicKeyBlockType)
	if err != nil {
		return textbook.PublicKey{}, err
	}

	var der publicKeyDER
	if _, err := asn1.Unmarshal(block.Bytes, &der); err != nil {
		return textbook.PublicKey{}, fmt.Errorf("unable to parse public key: %w", err)
	}

	values, err := toUint64s(der.N, der.E)
	if err != nil {
		return textbook.PublicKey{}, fmt.Errorf("unable to parse public key: %w", err)
	}

	return textbook.PublicKey{N: values[0], E: values[1]}, nil
}

func writePEM(filename string, block *pem.Block) (err error) {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close key file: %w", closeErr))
		}
	}()

	if err := pem.Encode(file, block); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}
	return nil
}

func readPEM(path, blockType string) (*pem.Block, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the key")
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("unexpected PEM block type %q, want %q", block.Type, blockType)
	}
	return block, nil
}

func toUint64s(values ...*big.Int) ([]uint64, error) {
	out := make([]uint64, len(values))
	for i, v := range values {
		if v == nil || v.Sign() < 0 || !v.IsUint64() {
			return nil, fmt.Errorf("value %d does not fit 64 bits", i)
		}
		out[i] = v.Uint64()
	}
	return out, nil
}
