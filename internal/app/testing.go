//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeypairGenerationService keys.KeypairGenerationService
	KeypairMetadataService   keys.KeypairMetadataService
	MessageService           keys.MessageService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	settings := testutil.NewTestKeygenSettings()
	processor, err := cryptography.NewTextbookRSAProcessor(settings, logger)
	require.NoError(t, err, "Failed to create textbook RSA processor")

	generationService, err := NewKeypairGenerationService(processor, dbContext.KeypairRepo, settings.Rounds, logger)
	require.NoError(t, err)

	metadataService, err := NewKeypairMetadataService(dbContext.KeypairRepo, logger)
	require.NoError(t, err)

	messageService, err := NewMessageService(processor, dbContext.KeypairRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		KeypairGenerationService: generationService,
		KeypairMetadataService:   metadataService,
		MessageService:           messageService,
		DBContext:                dbContext,
	}
}
