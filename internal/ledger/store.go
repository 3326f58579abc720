// Package ledger implements the single source of truth for
// transactions and settings. Every mutation is validated before
// acceptance and written through to durable storage before it is
// visible in memory.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/model"
	"github.com/MHiirwa/aluspend/internal/query"
	"github.com/MHiirwa/aluspend/internal/service"
)

// Persisted document names.
const (
	transactionsDocument = "transactions"
	settingsDocument     = "settings"
)

// Store owns the in-memory transaction collection and settings. All
// access goes through methods; callers only ever receive copies. The
// mutex serializes mutators so no two writes interleave even if the
// caller is concurrent.
type Store struct {
	docs         service.DocumentStore
	settings     model.Settings
	transactions []model.Transaction
	mu           sync.RWMutex
}

// New creates a ledger store on top of a document store. Call
// Initialize before use.
func New(docs service.DocumentStore) *Store {
	return &Store{
		docs:     docs,
		settings: model.DefaultSettings(),
	}
}

// Initialize loads transactions and settings from storage. An empty
// ledger is seeded with a small demonstration set and persisted;
// repeated calls do not re-seed once any transaction exists.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []model.Transaction
	if _, err := s.docs.Load(ctx, transactionsDocument, &transactions); err != nil {
		return err
	}
	s.transactions = transactions

	var settings model.Settings
	found, err := s.docs.Load(ctx, settingsDocument, &settings)
	if err != nil {
		return err
	}
	if found {
		s.settings = settings
	}

	if len(s.transactions) == 0 {
		seeded := seedTransactions()
		if err := s.docs.Save(ctx, transactionsDocument, seeded); err != nil {
			return err
		}
		s.transactions = seeded
		slog.Info("seeded demonstration transactions", "count", len(seeded))
	}

	return nil
}

// AddTransaction validates a draft, assigns it a fresh id, defaults
// the date to today when omitted, persists and returns the stored
// record. On validation failure the ledger is unchanged and the error
// carries the full field map.
func (s *Store) AddTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids are assigned here, never supplied by the caller.
	draft.ID = ""
	if draft.Date.IsZero() {
		draft.Date = model.Today()
	}

	if result := model.ValidateTransaction(draft); !result.Valid() {
		return model.Transaction{}, result.Err()
	}

	draft.ID = uuid.NewString()

	next := append(s.snapshotLocked(), draft)
	if err := s.docs.Save(ctx, transactionsDocument, next); err != nil {
		return model.Transaction{}, err
	}
	s.transactions = next

	slog.Info("transaction added",
		"id", draft.ID,
		"type", draft.Type,
		"amount", draft.Amount,
		"category", draft.Category)

	return draft, nil
}

// UpdateTransaction merges the patch into the identified transaction,
// re-validates the merged record and persists it. The store is left
// unchanged on any failure.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch model.TransactionPatch) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	merged := s.transactions[index].Apply(patch)
	if result := model.ValidateTransaction(merged); !result.Valid() {
		return model.Transaction{}, result.Err()
	}

	next := s.snapshotLocked()
	next[index] = merged
	if err := s.docs.Save(ctx, transactionsDocument, next); err != nil {
		return model.Transaction{}, err
	}
	s.transactions = next

	slog.Info("transaction updated", "id", id)

	return merged, nil
}

// DeleteTransaction removes the matching transaction. Absence is a
// no-op, not an error; either way the resulting collection is
// persisted.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if t.ID != id {
			next = append(next, t)
		}
	}

	if err := s.docs.Save(ctx, transactionsDocument, next); err != nil {
		return err
	}

	if len(next) < len(s.transactions) {
		slog.Info("transaction deleted", "id", id)
	}
	s.transactions = next

	return nil
}

// UpdateSettings validates and replaces the settings wholesale.
func (s *Store) UpdateSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result := model.ValidateSettings(settings); !result.Valid() {
		return result.Err()
	}

	next := settings.Clone()
	if err := s.docs.Save(ctx, settingsDocument, next); err != nil {
		return err
	}
	s.settings = next

	slog.Info("settings updated", "base_currency", next.BaseCurrency)

	return nil
}

// SetConversionRate updates the rate for a currency already present in
// the table.
func (s *Store) SetConversionRate(ctx context.Context, code string, rate decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settings.ConversionRates[code]; !ok {
		return fmt.Errorf("%w: %s", common.ErrInvalidCurrency, code)
	}
	if !rate.IsPositive() {
		return common.NewValidationError(map[string]string{
			"conversionRates": "conversion rate for " + code + " must be positive",
		})
	}

	next := s.settings.Clone()
	next.ConversionRates[code] = rate
	if err := s.docs.Save(ctx, settingsDocument, next); err != nil {
		return err
	}
	s.settings = next

	slog.Info("conversion rate updated", "currency", code, "rate", rate)

	return nil
}

// ClearAll erases the durable storage entries and resets the ledger to
// an empty collection with default settings.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.docs.Clear(ctx); err != nil {
		return err
	}

	s.transactions = nil
	s.settings = model.DefaultSettings()

	slog.Info("all data cleared")

	return nil
}

// Transactions returns a snapshot copy of the ledger in storage order.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// DashboardStats computes the dashboard aggregates for now's calendar
// month over the current ledger snapshot.
func (s *Store) DashboardStats(now time.Time) query.DashboardStats {
	return query.Stats(s.Transactions(), now)
}

// FilteredTransactions returns the ledger searched by term and sorted
// by key and direction, leaving the stored collection untouched.
func (s *Store) FilteredTransactions(term string, key query.SortKey, direction query.Direction) []model.Transaction {
	return query.Sort(query.Search(s.Transactions(), term), key, direction)
}

// snapshotLocked copies the transaction slice. Callers must hold at
// least a read lock.
func (s *Store) snapshotLocked() []model.Transaction {
	snapshot := make([]model.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

// indexOfLocked finds a transaction by id, or -1.
func (s *Store) indexOfLocked(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
