package logger

// Logger defines the logging interface shared by processors, repositories and services.
// Arguments are concatenated like fmt.Sprint.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a logger that attaches key=value to every record
	With(key string, value any) Logger
}
