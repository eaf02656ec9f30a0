package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// exit is swapped out in tests
var exit = os.Exit

// slogLogger adapts a slog handler to Logger. The console and file sinks only
// differ in the handler they pass in.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) log(level slog.Level, args []interface{}) string {
	msg := fmt.Sprint(args...)
	l.logger.Log(context.Background(), level, msg)
	return msg
}

// Debug logs at debug level.
func (l *slogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args) }

// Info logs at info level.
func (l *slogLogger) Info(args ...interface{}) { l.log(slog.LevelInfo, args) }

// Warn logs at warning level.
func (l *slogLogger) Warn(args ...interface{}) { l.log(slog.LevelWarn, args) }

// Error logs at error level.
func (l *slogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args) }

// Fatal logs at error level and terminates the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(slog.LevelError, args)
	exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	panic(l.log(slog.LevelError, args))
}

// With returns a child logger carrying key=value.
func (l *slogLogger) With(key string, value any) Logger {
	return &slogLogger{logger: l.logger.With(key, value)}
}
