package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels, from most to least verbose
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// RotationSettings bounds the size and age of rotated log files
type RotationSettings struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb" validate:"min=1,max=100"`
	MaxBackups int  `mapstructure:"max_backups" validate:"min=1,max=10"`
	MaxAgeDays int  `mapstructure:"max_age_days" validate:"min=1,max=365"`
	Compress   bool `mapstructure:"compress"`
}

// LoggerSettings selects the log sink and its verbosity.
// FilePath and Rotation are only read by the file sink.
type LoggerSettings struct {
	LogLevel string           `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType  string           `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath string           `mapstructure:"file_path" validate:"required_if=LogType file"`
	Rotation RotationSettings `mapstructure:"rotation" validate:"-"`
}

// NewLoggerSettings returns console logging at info level with rotation
// defaults ready for a switch to the file sink
func NewLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
		Rotation: RotationSettings{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// Validate checks the sink selection and, for the file sink, its rotation bounds
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile {
		if err := validate.Struct(&s.Rotation); err != nil {
			return fmt.Errorf("invalid log rotation: %w", err)
		}
	}

	return nil
}
