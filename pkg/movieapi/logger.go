package movieapi

// Logger is the printf-style sink used by the CLI, connectors and loader.
// Verbose output is dropped unless verbose mode or debug level is on.
// Implementations must be safe for concurrent use.
type Logger interface {
	Verbose(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
