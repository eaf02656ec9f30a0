package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// MaxFixedExponentAttempts bounds how many prime pairs are drawn when the
// caller insists on a specific public exponent.
const MaxFixedExponentAttempts = 32

// keypairGenerationService implements the KeypairGenerationService interface
type keypairGenerationService struct {
	processor   cryptoalg.TextbookRSAProcessor
	keypairRepo keys.KeypairRepository
	rounds      int
	logger      logger.Logger
}

// NewKeypairGenerationService creates a new keypairGenerationService instance.
// rounds is recorded on every stored keypair.
func NewKeypairGenerationService(
	processor cryptoalg.TextbookRSAProcessor,
	keypairRepo keys.KeypairRepository,
	rounds int,
	logger logger.Logger,
) (keys.KeypairGenerationService, error) {
	if processor == nil || keypairRepo == nil {
		return nil, errors.New("processor and repository are required")
	}
	return &keypairGenerationService{
		processor:   processor,
		keypairRepo: keypairRepo,
		rounds:      rounds,
		logger:      logger,
	}, nil
}

// Generate creates and stores a keypair.
func (s *keypairGenerationService) Generate(ctx context.Context, exponent uint64) (*keys.KeypairMeta, error) {
	kp, err := GenerateKeypair(s.processor, exponent)
	if err != nil {
		return nil, err
	}

	meta := keys.NewKeypairMeta(uuid.NewString(), kp, s.rounds, time.Now().UTC())
	if err := s.keypairRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to store keypair: %w", err)
	}

	s.logger.Info("Generated keypair ", meta.ID, " with e=", meta.E)
	return meta, nil
}

// GenerateKeypair derives a keypair through processor. exponent 0 selects the
// public exponent automatically. A non-zero exponent is kept fixed and fresh
// primes are drawn until it is coprime to phi, up to MaxFixedExponentAttempts times.
func GenerateKeypair(processor cryptoalg.TextbookRSAProcessor, exponent uint64) (*textbook.Keypair, error) {
	if exponent == 0 {
		return processor.GenerateKeys(textbook.AutoExponent())
	}

	var lastErr error
	for attempt := 0; attempt < MaxFixedExponentAttempts; attempt++ {
		kp, err := processor.GenerateKeys(textbook.FixedExponent(exponent))
		if err == nil {
			return kp, nil
		}
		if !errors.Is(err, textbook.ErrInvalidExponent) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no prime pair accepted exponent %d after %d attempts: %w", exponent, MaxFixedExponentAttempts, lastErr)
}

// keypairMetadataService implements the KeypairMetadataService interface
type keypairMetadataService struct {
	keypairRepo keys.KeypairRepository
	logger      logger.Logger
}

// NewKeypairMetadataService creates a new keypairMetadataService instance
func NewKeypairMetadataService(keypairRepo keys.KeypairRepository, logger logger.Logger) (keys.KeypairMetadataService, error) {
	return &keypairMetadataService{
		keypairRepo: keypairRepo,
		logger:      logger,
	}, nil
}

// List retrieves keypairs matching a query.
func (s *keypairMetadataService) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairMeta, error) {
	keypairs, err := s.keypairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keypairs, nil
}

// GetByID retrieves a keypair by its ID.
func (s *keypairMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeypairMeta, error) {
	keypair, err := s.keypairRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return keypair, nil
}

// DeleteByID deletes a keypair by its ID.
func (s *keypairMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keypairRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete keypair: %w", err)
	}
	return nil
}

// messageService implements the MessageService interface
type messageService struct {
	processor   cryptoalg.TextbookRSAProcessor
	keypairRepo keys.KeypairRepository
	logger      logger.Logger
}

// NewMessageService creates a new messageService instance
func NewMessageService(processor cryptoalg.TextbookRSAProcessor, keypairRepo keys.KeypairRepository, logger logger.Logger) (keys.MessageService, error) {
	return &messageService{
		processor:   processor,
		keypairRepo: keypairRepo,
		logger:      logger,
	}, nil
}

// Encrypt transforms message with the public half of a stored keypair.
func (s *messageService) Encrypt(ctx context.Context, keyID, message string) (string, error) {
	meta, err := s.keypairRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	ciphertext, err := s.processor.Encrypt(message, meta.Keypair().PublicKey())
	if err != nil {
		s.logger.With("key_id", keyID).Warn(fmt.Sprintf("encrypt failed: %v", err))
		return "", fmt.Errorf("%w", err)
	}
	s.logger.With("key_id", keyID).Debug("encrypt succeeded")
	return ciphertext, nil
}

// Decrypt transforms ciphertext with the private half of a stored keypair.
func (s *messageService) Decrypt(ctx context.Context, keyID, ciphertext string) (string, error) {
	meta, err := s.keypairRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	plaintext, err := s.processor.Decrypt(ciphertext, meta.Keypair().PrivateKey())
	if err != nil {
		s.logger.With("key_id", keyID).Warn(fmt.Sprintf("decrypt failed: %v", err))
		return "", fmt.Errorf("%w", err)
	}
	s.logger.With("key_id", keyID).Debug("decrypt succeeded")
	return plaintext, nil
}
