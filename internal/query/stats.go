package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/model"
)

// recentLimit caps the dashboard's recent-transaction list.
const recentLimit = 5

// DashboardStats aggregates the ledger over the calendar month of a
// reference time.
type DashboardStats struct {
	Income             decimal.Decimal
	Expenses           decimal.Decimal
	Balance            decimal.Decimal
	Savings            decimal.Decimal
	RecentTransactions []model.Transaction
}

// Stats computes the dashboard aggregates: income, expenses, balance
// and savings over the transactions dated in now's calendar month, and
// the last 5 transactions in storage order, most recently stored
// first. The recent list deliberately ignores dates, search and sort:
// it reflects insertion order.
func Stats(transactions []model.Transaction, now time.Time) DashboardStats {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if !t.Date.SameMonth(now) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	balance := income.Sub(expenses)
	savings := balance
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	start := len(transactions) - recentLimit
	if start < 0 {
		start = 0
	}
	recent := make([]model.Transaction, 0, len(transactions)-start)
	for i := len(transactions) - 1; i >= start; i-- {
		recent = append(recent, transactions[i])
	}

	return DashboardStats{
		Income:             income,
		Expenses:           expenses,
		Balance:            balance,
		Savings:            savings,
		RecentTransactions: recent,
	}
}
