// Package service defines the interfaces shared between the ledger and
// its collaborators.
package service

import (
	"context"
	"time"
)

// DocumentStore is the persistence adapter: a durable store of named
// JSON-serializable documents. Load reports absence instead of failing
// so callers can fall back to their own defaults.
type DocumentStore interface {
	// Load unmarshals the named document into out. The boolean is false
	// when no document with that name exists.
	Load(ctx context.Context, name string, out any) (bool, error)

	// Save marshals v and durably stores it under name, replacing any
	// previous document. The write completes before Save returns.
	Save(ctx context.Context, name string, v any) error

	// Delete removes the named document. Absence is not an error.
	Delete(ctx context.Context, name string) error

	// Clear removes every stored document.
	Clear(ctx context.Context) error

	Close() error
}

// RetryOptions configures retry behavior for transient failures.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
