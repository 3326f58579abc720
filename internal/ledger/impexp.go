package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/model"
)

// exportVersion identifies the export wire format.
const exportVersion = "1.0.0"

// exportDocument is the export/import wire format.
type exportDocument struct {
	Transactions []model.Transaction `json:"transactions"`
	Settings     *model.Settings     `json:"settings,omitempty"`
	ExportedAt   time.Time           `json:"exportedAt"`
	Version      string              `json:"version"`
}

// Export serializes the whole ledger into the versioned wire format.
func (s *Store) Export(now time.Time) ([]byte, error) {
	s.mu.RLock()
	transactions := s.snapshotLocked()
	settings := s.settings.Clone()
	s.mu.RUnlock()

	doc := exportDocument{
		Transactions: transactions,
		Settings:     &settings,
		ExportedAt:   now.UTC(),
		Version:      exportVersion,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// Import replaces the entire transaction collection, and settings when
// present, from an exported document. The document must contain an
// array-typed transactions field and every entry must pass validation;
// otherwise nothing changes. The replacement is a single atomic step:
// state and storage are only touched after the whole document has been
// accepted.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Transactions json.RawMessage `json:"transactions"`
		Settings     json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}

	if len(raw.Transactions) == 0 {
		return fmt.Errorf("%w: missing transactions field", common.ErrInvalidFormat)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw.Transactions), []byte("[")) {
		return fmt.Errorf("%w: transactions must be an array", common.ErrInvalidFormat)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(raw.Transactions, &transactions); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}

	seen := make(map[string]bool, len(transactions))
	for i, t := range transactions {
		if t.ID == "" {
			return fmt.Errorf("%w: transaction %d has no id", common.ErrInvalidFormat, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate transaction id %s", common.ErrInvalidFormat, t.ID)
		}
		seen[t.ID] = true

		if result := model.ValidateTransaction(t); !result.Valid() {
			return fmt.Errorf("transaction %s: %w", t.ID, result.Err())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings
	settingsImported := false
	if len(raw.Settings) > 0 && !bytes.Equal(bytes.TrimSpace(raw.Settings), []byte("null")) {
		var imported model.Settings
		if err := json.Unmarshal(raw.Settings, &imported); err != nil {
			return fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
		}
		if result := model.ValidateSettings(imported); !result.Valid() {
			return result.Err()
		}
		settings = imported
		settingsImported = true
	}

	if err := s.docs.Save(ctx, transactionsDocument, transactions); err != nil {
		return err
	}
	if err := s.docs.Save(ctx, settingsDocument, settings); err != nil {
		return err
	}

	s.transactions = transactions
	s.settings = settings.Clone()

	slog.Info("ledger imported",
		"transactions", len(transactions),
		"settings_replaced", settingsImported)

	return nil
}
