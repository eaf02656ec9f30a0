package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/go-playground/validator/v10"
)

// KeypairMeta is a persisted textbook RSA keypair
type KeypairMeta struct {
	ID              string    `validate:"required,uuid4"`
	P               uint64    `validate:"required"`
	Q               uint64    `validate:"required"`
	N               uint64    `validate:"required"`
	Phi             uint64    `validate:"required"`
	E               uint64    `validate:"required"`
	S               uint64    `validate:"required"`
	Rounds          int       `validate:"gte=1"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewKeypairMeta wraps a generated keypair
func NewKeypairMeta(id string, kp *textbook.Keypair, rounds int, created time.Time) *KeypairMeta {
	return &KeypairMeta{
		ID:              id,
		P:               kp.P,
		Q:               kp.Q,
		N:               kp.N,
		Phi:             kp.Phi,
		E:               kp.E,
		S:               kp.S,
		Rounds:          rounds,
		DateTimeCreated: created,
	}
}

// Keypair returns the kernel representation
func (k *KeypairMeta) Keypair() textbook.Keypair {
	return textbook.Keypair{P: k.P, Q: k.Q, N: k.N, Phi: k.Phi, E: k.E, S: k.S}
}

// Validate checks the struct tags and the arithmetic invariants of the keypair
func (k *KeypairMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if err := k.Keypair().Validate(); err != nil {
		return fmt.Errorf("invalid keypair: %w", err)
	}

	return nil
}

// KeypairQuery filters and pages keypair listings
type KeypairQuery struct {
	CreatedAfter time.Time
	Limit        int    `validate:"omitempty,gt=0"`
	Offset       int    `validate:"omitempty,gte=0"`
	SortBy       string `validate:"omitempty,oneof=id n e date_time_created"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewKeypairQuery returns an empty query
func NewKeypairQuery() *KeypairQuery {
	return &KeypairQuery{}
}

// Validate checks the query parameters
func (q *KeypairQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
