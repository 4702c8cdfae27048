package movieapi

import "time"

// ErrorClassifier decides which connection failures are worth another attempt.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy spaces out connection attempts. Attempts are counted from
// zero for the first retry; MaxAttempts of 0 disables retrying and a
// negative value retries until the context ends.
type BackoffStrategy interface {
	NextDelay(attempt int) time.Duration
	MaxAttempts() int
}
