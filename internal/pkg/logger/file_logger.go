package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger returns a logger writing JSON records to a size-rotated file.
// The parent directory of the log file is created when missing.
func NewFileLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings.FilePath == "" {
		return nil, fmt.Errorf("file logger needs a file path")
	}

	if err := os.MkdirAll(filepath.Dir(settings.FilePath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.Rotation.MaxSizeMB,
		MaxBackups: settings.Rotation.MaxBackups,
		MaxAge:     settings.Rotation.MaxAgeDays,
		Compress:   settings.Rotation.Compress,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	return newSlogLogger(handler), nil
}
