package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct{ transient bool }

func (s stubClassifier) IsTransient(error) bool { return s.transient }

type fixedBackoff struct {
	delay    time.Duration
	attempts int
}

func (f fixedBackoff) NextDelay(int) time.Duration { return f.delay }
func (f fixedBackoff) MaxAttempts() int            { return f.attempts }

func TestExecute_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := NewExecutor(stubClassifier{true}, fixedBackoff{attempts: 3}).Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ZeroAttemptsIsSingleCall(t *testing.T) {
	calls := 0
	boom := errors.New("connection refused")
	err := NewExecutor(stubClassifier{true}, fixedBackoff{attempts: 0}).Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	var retried []int
	exec := NewExecutor(stubClassifier{true}, fixedBackoff{attempts: 5}).
		WithOnRetry(func(attempt int, _ error, _ time.Duration) { retried = append(retried, attempt) })

	err := exec.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{0, 1}, retried)
}

func TestExecute_FatalErrorNotRetried(t *testing.T) {
	calls := 0
	fatal := errors.New("password authentication failed")
	err := NewExecutor(stubClassifier{false}, fixedBackoff{attempts: 5}).Execute(context.Background(), func(context.Context) error {
		calls++
		return fatal
	})
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestExecute_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := NewExecutor(stubClassifier{true}, fixedBackoff{attempts: 2}).Execute(context.Background(), func(context.Context) error {
		calls++
		return errors.New("i/o timeout")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewExecutor(stubClassifier{true}, fixedBackoff{delay: time.Second, attempts: 3}).Execute(ctx, func(context.Context) error {
		return errors.New("connection refused")
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fixedBackoff{}) })
	assert.Panics(t, func() { NewExecutor(stubClassifier{}, nil) })
}
