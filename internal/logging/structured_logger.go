package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds structured logging configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string

	// Format is json or console.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// StructuredLogger adapts zerolog to movieapi.Logger. Verbose maps to debug.
type StructuredLogger struct {
	log zerolog.Logger
}

// NewStructuredLogger builds a zerolog logger from cfg. Unknown levels fall
// back to info, unknown formats to json.
func NewStructuredLogger(cfg Config) *StructuredLogger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return &StructuredLogger{log: log}
}

// ParseLevel converts a level name to zerolog.Level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Zerolog exposes the underlying logger for request logging.
func (l *StructuredLogger) Zerolog() zerolog.Logger {
	return l.log
}

func (l *StructuredLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug().Msg(sprintf(format, args))
}

func (l *StructuredLogger) Info(format string, args ...interface{}) {
	l.log.Info().Msg(sprintf(format, args))
}

func (l *StructuredLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msg(sprintf(format, args))
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
