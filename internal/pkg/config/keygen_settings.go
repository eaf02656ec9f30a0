package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when a setting is left empty
const (
	DefaultRounds   = 10
	DefaultMaxPrime = 1<<31 - 1
)

// KeygenSettings controls prime generation and the cipher variant.
// Seed 0 means "seed from the clock".
type KeygenSettings struct {
	Rounds   int    `mapstructure:"rounds" validate:"gte=1,lte=64"`
	MaxPrime uint64 `mapstructure:"max_prime" validate:"gte=7,lte=2147483648"`
	Faithful bool   `mapstructure:"faithful"`
	Seed     uint64 `mapstructure:"seed"`
}

// NewKeygenSettings returns settings populated with the defaults
func NewKeygenSettings() *KeygenSettings {
	return &KeygenSettings{
		Rounds:   DefaultRounds,
		MaxPrime: DefaultMaxPrime,
	}
}

// Validate checks that all fields in KeygenSettings are valid
func (s *KeygenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeygenSettings: %w", err)
	}

	return nil
}
