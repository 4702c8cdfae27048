package movieapi

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitConnectionError = 11 // Failed to connect to database
	ExitLoadFailed      = 13 // Bulk load aborted
)

const (
	// DefaultRetryInitialDelay is the initial delay before the first connection retry.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the maximum delay between connection retries.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultRetryMaxAttempts is zero: a failed connection is reported, not retried.
	// Operators opt in with --connect-retries.
	DefaultRetryMaxAttempts = 0

	// DefaultManagementDB is the database used for CREATE DATABASE.
	DefaultManagementDB = "postgres"

	// DefaultConnectTimeout bounds a single connection attempt.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultShutdownTimeout bounds how long serve waits for in-flight requests.
	DefaultShutdownTimeout = 10 * time.Second

	// TableName is the single table backing the record store.
	TableName = "movies"
)
