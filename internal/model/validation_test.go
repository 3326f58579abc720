package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHiirwa/aluspend/internal/common"
)

func validDraft() Transaction {
	return Transaction{
		Type:        TypeExpense,
		Description: "Grocery Shopping",
		Amount:      decimal.RequireFromString("85.30"),
		Category:    "Food",
		Date:        NewDate(2023, 5, 15),
	}
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		mutate     func(*Transaction)
		name       string
		wantFields []string
	}{
		{
			name:       "valid expense",
			mutate:     func(*Transaction) {},
			wantFields: nil,
		},
		{
			name: "valid income",
			mutate: func(tx *Transaction) {
				tx.Type = TypeIncome
				tx.Category = "Income"
			},
			wantFields: nil,
		},
		{
			name: "unknown type",
			mutate: func(tx *Transaction) {
				tx.Type = "transfer"
			},
			wantFields: []string{"type"},
		},
		{
			name: "empty description",
			mutate: func(tx *Transaction) {
				tx.Description = ""
			},
			wantFields: []string{"description"},
		},
		{
			name: "description with disallowed characters",
			mutate: func(tx *Transaction) {
				tx.Description = "coffee @ work"
			},
			wantFields: []string{"description"},
		},
		{
			name: "description with allowed punctuation",
			mutate: func(tx *Transaction) {
				tx.Description = "Lunch - soup, bread. Good!"
			},
			wantFields: nil,
		},
		{
			name: "zero amount",
			mutate: func(tx *Transaction) {
				tx.Amount = decimal.Zero
			},
			wantFields: []string{"amount"},
		},
		{
			name: "negative amount",
			mutate: func(tx *Transaction) {
				tx.Amount = decimal.RequireFromString("-5.00")
			},
			wantFields: []string{"amount"},
		},
		{
			name: "three decimal places",
			mutate: func(tx *Transaction) {
				tx.Amount = decimal.RequireFromString("12.345")
			},
			wantFields: []string{"amount"},
		},
		{
			name: "exactly two decimal places",
			mutate: func(tx *Transaction) {
				tx.Amount = decimal.RequireFromString("0.01")
			},
			wantFields: nil,
		},
		{
			name: "whitespace category",
			mutate: func(tx *Transaction) {
				tx.Category = "   "
			},
			wantFields: []string{"category"},
		},
		{
			name: "zero date",
			mutate: func(tx *Transaction) {
				tx.Date = Date{}
			},
			wantFields: []string{"date"},
		},
		{
			name: "every field invalid",
			mutate: func(tx *Transaction) {
				*tx = Transaction{}
			},
			wantFields: []string{"type", "description", "amount", "category", "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			result := ValidateTransaction(draft)

			if len(tt.wantFields) == 0 {
				assert.True(t, result.Valid())
				assert.NoError(t, result.Err())
				return
			}

			require.False(t, result.Valid())
			require.Len(t, result.Errors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, result.Errors, field)
			}

			var verr *common.ValidationError
			require.ErrorAs(t, result.Err(), &verr)
			assert.Equal(t, result.Errors, verr.Fields)
		})
	}
}

func TestValidateTransactionMessages(t *testing.T) {
	result := ValidateTransaction(Transaction{})

	assert.Equal(t, "transaction type must be income or expense", result.Errors["type"])
	assert.Equal(t, "description is required and can only contain letters, numbers, and common punctuation", result.Errors["description"])
	assert.Equal(t, "amount must be a positive number with up to 2 decimal places", result.Errors["amount"])
	assert.Equal(t, "category is required", result.Errors["category"])
	assert.Equal(t, "valid date is required (YYYY-MM-DD)", result.Errors["date"])
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		mutate     func(*Settings)
		name       string
		wantFields []string
	}{
		{
			name:       "defaults are valid",
			mutate:     func(*Settings) {},
			wantFields: nil,
		},
		{
			name: "unsupported base currency",
			mutate: func(s *Settings) {
				s.BaseCurrency = "EUR"
			},
			wantFields: []string{"baseCurrency"},
		},
		{
			name: "missing rate for base currency",
			mutate: func(s *Settings) {
				delete(s.ConversionRates, "USD")
			},
			wantFields: []string{"conversionRates"},
		},
		{
			name: "zero conversion rate",
			mutate: func(s *Settings) {
				s.ConversionRates["RWF"] = decimal.Zero
			},
			wantFields: []string{"conversionRates"},
		},
		{
			name: "negative budget",
			mutate: func(s *Settings) {
				s.MonthlyBudget = decimal.RequireFromString("-1")
			},
			wantFields: []string{"monthlyBudget"},
		},
		{
			name: "positive budget",
			mutate: func(s *Settings) {
				s.MonthlyBudget = decimal.RequireFromString("500")
			},
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(&settings)

			result := ValidateSettings(settings)

			if len(tt.wantFields) == 0 {
				assert.True(t, result.Valid())
				return
			}
			require.False(t, result.Valid())
			for _, field := range tt.wantFields {
				assert.Contains(t, result.Errors, field)
			}
		})
	}
}

func TestValidationErrorIsDeterministic(t *testing.T) {
	err := ValidateTransaction(Transaction{}).Err()
	require.Error(t, err)

	first := err.Error()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidateTransaction(Transaction{}).Err().Error())
	}

	var verr *common.ValidationError
	assert.True(t, errors.As(err, &verr))
}
