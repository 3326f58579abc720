package model

import (
	"regexp"
	"strings"

	"github.com/MHiirwa/aluspend/internal/common"
)

// Validation patterns.
var (
	// descriptionPattern allows alphanumerics, whitespace and common
	// punctuation.
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.,!?]+$`)
)

// Result is the outcome of validating a candidate record: a map of
// violated fields to messages. All applicable rules are checked in one
// pass so the caller can display every problem at once.
type Result struct {
	Errors map[string]string
}

// Valid reports whether no rule was violated.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a valid result, otherwise a ValidationError
// carrying the field map.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return common.NewValidationError(r.Errors)
}

func (r *Result) add(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[field] = message
}

// ValidateTransaction checks every field-level rule for a transaction
// candidate. The ID is not checked: drafts have none and the store
// assigns it after validation.
func ValidateTransaction(t Transaction) Result {
	var r Result

	if t.Type != TypeIncome && t.Type != TypeExpense {
		r.add("type", "transaction type must be income or expense")
	}

	if t.Description == "" || !descriptionPattern.MatchString(t.Description) {
		r.add("description", "description is required and can only contain letters, numbers, and common punctuation")
	}

	if !t.Amount.IsPositive() || !t.Amount.Equal(t.Amount.Round(2)) {
		r.add("amount", "amount must be a positive number with up to 2 decimal places")
	}

	if strings.TrimSpace(t.Category) == "" {
		r.add("category", "category is required")
	}

	if t.Date.IsZero() {
		r.add("date", "valid date is required (YYYY-MM-DD)")
	}

	return r
}

// ValidateSettings checks the settings invariants: a supported base
// currency, a non-negative budget, and a positive rate for every
// currency in the table including the base currency itself.
func ValidateSettings(s Settings) Result {
	var r Result

	if !IsSupportedCurrency(s.BaseCurrency) {
		r.add("baseCurrency", "invalid base currency")
	} else if _, ok := s.ConversionRates[s.BaseCurrency]; !ok {
		r.add("conversionRates", "missing conversion rate for base currency "+s.BaseCurrency)
	}

	for code, rate := range s.ConversionRates {
		if !rate.IsPositive() {
			r.add("conversionRates", "conversion rate for "+code+" must be positive")
		}
	}

	if s.MonthlyBudget.IsNegative() {
		r.add("monthlyBudget", "monthly budget cannot be negative")
	}

	return r
}
