package testutil

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// SetupTestLogger returns a console logger tagged with the running test.
// It bypasses the process-wide singleton so tests can run in any order.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewConsoleLogger(config.LogLevelWarning).With("test", t.Name())
}
