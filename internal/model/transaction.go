// Package model defines the core domain types for the ledger.
package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType classifies a ledger entry as money in or money out.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single ledger entry. The ID is assigned by
// the ledger store at creation and never changes afterwards.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// TransactionPatch carries the fields to replace on an existing
// transaction. Nil fields keep their current value; the ID is never
// patchable.
type TransactionPatch struct {
	Type        *TransactionType
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *Date
}

// Apply returns a copy of t with the patch's non-nil fields merged in.
func (t Transaction) Apply(p TransactionPatch) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	return t
}
