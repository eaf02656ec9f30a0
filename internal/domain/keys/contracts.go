package keys

import (
	"context"
	"errors"
)

// ErrKeypairNotFound is returned when no keypair matches an ID
var ErrKeypairNotFound = errors.New("keypair not found")

// KeypairGenerationService defines methods for generating and storing keypairs.
type KeypairGenerationService interface {
	// Generate creates a keypair. exponent 0 selects the public exponent automatically.
	Generate(ctx context.Context, exponent uint64) (*KeypairMeta, error)
}

// KeypairMetadataService defines methods for listing, fetching and deleting keypairs.
type KeypairMetadataService interface {
	List(ctx context.Context, query *KeypairQuery) ([]*KeypairMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeypairMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}

// MessageService encrypts and decrypts messages with stored keypairs.
type MessageService interface {
	Encrypt(ctx context.Context, keyID, message string) (string, error)
	Decrypt(ctx context.Context, keyID, ciphertext string) (string, error)
}

// KeypairRepository defines the persistence operations for keypairs
type KeypairRepository interface {
	Create(ctx context.Context, key *KeypairMeta) error
	List(ctx context.Context, query *KeypairQuery) ([]*KeypairMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeypairMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
