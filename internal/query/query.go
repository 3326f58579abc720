// Package query implements the pure read side of the ledger: search,
// filtering, sorting and dashboard aggregates. Every function takes a
// snapshot and returns a new slice; inputs are never mutated.
package query

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/model"
)

// SortKey selects the transaction field to sort by.
type SortKey string

// Sortable fields.
const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByDescription SortKey = "description"
	SortByCategory    SortKey = "category"
)

// Direction orders a sort ascending or descending.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Search returns the transactions whose description or category
// contains term, case-insensitively. An empty term returns the input
// unchanged. Relative order is preserved.
func Search(transactions []model.Transaction, term string) []model.Transaction {
	if term == "" {
		return transactions
	}

	needle := strings.ToLower(term)
	matched := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Description), needle) ||
			strings.Contains(strings.ToLower(t.Category), needle) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Criteria is a conjunctive filter: a transaction is retained only if
// it satisfies every criterion that is set. Zero-valued criteria bind
// nothing.
type Criteria struct {
	Type      model.TransactionType
	Category  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	StartDate *model.Date
	EndDate   *model.Date
}

// Filter returns the transactions matching every set criterion.
func Filter(transactions []model.Transaction, c Criteria) []model.Transaction {
	matched := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if matches(t, c) {
			matched = append(matched, t)
		}
	}
	return matched
}

func matches(t model.Transaction, c Criteria) bool {
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.MinAmount != nil && t.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && t.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	if c.StartDate != nil && t.Date.Before(c.StartDate.Time) {
		return false
	}
	if c.EndDate != nil && t.Date.After(c.EndDate.Time) {
		return false
	}
	return true
}

// Sort returns a new slice ordered by the given key and direction.
// The sort is stable: equal keys keep their relative input order, so
// toggling the direction on an already-sorted list behaves
// predictably.
func Sort(transactions []model.Transaction, key SortKey, direction Direction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)

	less := lessFunc(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFunc(key SortKey) func(a, b model.Transaction) bool {
	switch key {
	case SortByAmount:
		return func(a, b model.Transaction) bool {
			return a.Amount.LessThan(b.Amount)
		}
	case SortByDescription:
		return func(a, b model.Transaction) bool {
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		}
	case SortByCategory:
		return func(a, b model.Transaction) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		// Chronological for SortByDate and anything unrecognized.
		return func(a, b model.Transaction) bool {
			return a.Date.Before(b.Date.Time)
		}
	}
}
