// Package logging provides implementations of movieapi.Logger.
//
//   - ConsoleLogger: plain lines on stderr, used by the load and createdb commands
//   - StructuredLogger: zerolog JSON or console output, used by serve
//   - NullLogger: discards everything (tests)
//
// All implementations are safe for concurrent use.
package logging
