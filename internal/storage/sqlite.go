// Package storage provides the data persistence layer: a durable store
// of named JSON documents backed by SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/service"
)

// SQLiteStore implements service.DocumentStore on a single SQLite
// database with one documents table.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite-backed document store, creating
// the database directory and schema as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections, and a single
	// connection is what guarantees mutations never interleave.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the named document into out. The boolean is false when no
// document with that name has been saved.
func (s *SQLiteStore) Load(ctx context.Context, name string, out any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(name, "name"); err != nil {
		return false, err
	}

	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT body FROM documents WHERE name = ?
	`, name).Scan(&body)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, common.NewPersistenceError("load "+name, err)
	}

	if err := json.Unmarshal([]byte(body), out); err != nil {
		return false, common.NewPersistenceError("decode "+name, err)
	}

	return true, nil
}

// Save marshals v and upserts it under name. The write is durable when
// Save returns nil; transient lock contention is retried.
func (s *SQLiteStore) Save(ctx context.Context, name string, v any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	body, err := json.Marshal(v)
	if err != nil {
		return common.NewPersistenceError("encode "+name, err)
	}

	err = common.WithRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, `
			INSERT INTO documents (name, body, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				body = excluded.body,
				updated_at = excluded.updated_at
		`, name, string(body), time.Now().UTC())
		if execErr != nil {
			return &common.RetryableError{Err: execErr, Retryable: isBusy(execErr)}
		}
		return nil
	}, service.RetryOptions{MaxAttempts: 3})
	if err != nil {
		return common.NewPersistenceError("save "+name, err)
	}

	return nil
}

// Delete removes the named document. Absence is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name); err != nil {
		return common.NewPersistenceError("delete "+name, err)
	}
	return nil
}

// Clear removes every stored document.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return common.NewPersistenceError("clear", err)
	}
	return nil
}

// isBusy reports whether the error is transient SQLite lock
// contention.
func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}
