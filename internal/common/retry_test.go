package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHiirwa/aluspend/internal/service"
)

func fastRetryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return nil
		}, fastRetryOptions())
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return &RetryableError{Err: errors.New("busy"), Retryable: true}
			}
			return nil
		}, fastRetryOptions())
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return &RetryableError{Err: errors.New("busy"), Retryable: true}
		}, fastRetryOptions())
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable aborts immediately", func(t *testing.T) {
		calls := 0
		wrapped := errors.New("constraint violation")
		err := WithRetry(ctx, func() error {
			calls++
			return &RetryableError{Err: wrapped, Retryable: false}
		}, fastRetryOptions())
		assert.ErrorIs(t, err, wrapped)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := WithRetry(cancelled, func() error {
			return &RetryableError{Err: errors.New("busy"), Retryable: true}
		}, fastRetryOptions())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: false}))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestValidationError(t *testing.T) {
	t.Run("message orders fields deterministically", func(t *testing.T) {
		err := NewValidationError(map[string]string{
			"type":   "bad type",
			"amount": "bad amount",
		})
		assert.Equal(t, "validation failed: amount: bad amount; type: bad type", err.Error())
	})

	t.Run("empty field map", func(t *testing.T) {
		err := NewValidationError(nil)
		assert.Equal(t, "validation failed", err.Error())
	})
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, level.String(), "DEBUG")

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewPersistenceError("save transactions", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save transactions")
	assert.Contains(t, err.Error(), "disk full")
}
