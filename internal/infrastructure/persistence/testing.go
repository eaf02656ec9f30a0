//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestRounds is the Miller-Rabin round count recorded on test keypairs
const TestRounds = 10

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeypairRepo keys.KeypairRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, MigrateSchema(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	keypairRepo, err := NewGormKeypairRepository(db, logger)
	require.NoError(t, err, "Failed to create keypair repository")

	return &TestContext{
		DB:          db,
		KeypairRepo: keypairRepo,
	}
}

// CreateTestKeypair generates a keypair from a fixed seed and wraps it for storage
func CreateTestKeypair(t *testing.T, seed uint64) *keys.KeypairMeta {
	t.Helper()

	kp, err := textbook.GenerateKeypair(textbook.NewSource(seed))
	require.NoError(t, err)

	return keys.NewKeypairMeta(uuid.NewString(), &kp, TestRounds, time.Now().UTC())
}
