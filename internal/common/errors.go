// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common application errors.
var (
	// Ledger errors.
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidFormat   = errors.New("invalid import format")
	ErrInvalidCurrency = errors.New("unsupported currency")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports every rule violation for a candidate record,
// keyed by field name. It is always recoverable: callers surface the
// field map to the user and retry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	// Deterministic ordering for logs and tests.
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a validation error from a field map.
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// PersistenceError indicates that the durable store failed; the
// in-memory state is not authoritative until a later write succeeds.
type PersistenceError struct {
	Err error
	Op  string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a storage failure with the operation name.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}
	return false
}
