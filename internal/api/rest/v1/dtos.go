package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
)

// GenerateKeyRequest represents the request body for generating a keypair.
// An omitted or zero exponent is chosen automatically.
type GenerateKeyRequest struct {
	Exponent uint64 `json:"exponent" validate:"exponent"`
}

// Validate checks the request fields
func (r *GenerateKeyRequest) Validate() error {
	validate, err := validators.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("public exponent must be 0 or an odd number of at least 3: %w", err)
	}
	return nil
}

// MessageRequest represents the request body for encrypting or decrypting a message.
// The field must be present but may be empty; the empty message encodes to 0.
type MessageRequest struct {
	Message *string `json:"message" binding:"required"`
}

// KeypairResponse represents a stored keypair
type KeypairResponse struct {
	ID              string    `json:"id"`
	P               uint64    `json:"p"`
	Q               uint64    `json:"q"`
	N               uint64    `json:"n"`
	Phi             uint64    `json:"phi"`
	E               uint64    `json:"e"`
	S               uint64    `json:"s"`
	Rounds          int       `json:"rounds"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeypairResponse maps a keypair to its response DTO
func NewKeypairResponse(meta *keys.KeypairMeta) KeypairResponse {
	return KeypairResponse{
		ID:              meta.ID,
		P:               meta.P,
		Q:               meta.Q,
		N:               meta.N,
		Phi:             meta.Phi,
		E:               meta.E,
		S:               meta.S,
		Rounds:          meta.Rounds,
		DateTimeCreated: meta.DateTimeCreated,
	}
}

// MessageResponse carries the result of an encryption or decryption
type MessageResponse struct {
	KeyID   string `json:"key_id"`
	Message string `json:"message"`
}

// PrimeResponse reports the outcome of a primality test
type PrimeResponse struct {
	N      uint64 `json:"n"`
	Rounds int    `json:"rounds"`
	Prime  bool   `json:"prime"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}
