package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/model"
)

// seedTransactions builds the demonstration entries stored the first
// time the ledger starts with no data.
func seedTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:          uuid.NewString(),
			Type:        model.TypeExpense,
			Description: "Grocery Shopping",
			Amount:      decimal.RequireFromString("85.30"),
			Category:    "Food",
			Date:        model.NewDate(2023, 5, 15),
		},
		{
			ID:          uuid.NewString(),
			Type:        model.TypeIncome,
			Description: "Salary Deposit",
			Amount:      decimal.RequireFromString("2450.00"),
			Category:    "Income",
			Date:        model.NewDate(2023, 5, 10),
		},
		{
			ID:          uuid.NewString(),
			Type:        model.TypeExpense,
			Description: "Restaurant Dinner",
			Amount:      decimal.RequireFromString("64.20"),
			Category:    "Food",
			Date:        model.NewDate(2023, 5, 8),
		},
		{
			ID:          uuid.NewString(),
			Type:        model.TypeExpense,
			Description: "Netflix Subscription",
			Amount:      decimal.RequireFromString("15.99"),
			Category:    "Entertainment",
			Date:        model.NewDate(2023, 5, 5),
		},
	}
}
