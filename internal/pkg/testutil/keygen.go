package testutil

import "github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

// TestSeed keeps generated primes stable across test runs
const TestSeed = 20240601

// NewTestKeygenSettings returns deterministic key generation settings
func NewTestKeygenSettings() *config.KeygenSettings {
	settings := config.NewKeygenSettings()
	settings.Seed = TestSeed
	return settings
}
