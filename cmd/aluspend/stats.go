package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/currency"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics for the current month",
		Long: `Show income, expenses, balance and savings over the current calendar
month, plus the five most recently recorded transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			stats := store.DashboardStats(now)
			settings := store.Settings()
			code := settings.BaseCurrency

			var b strings.Builder
			fmt.Fprintf(&b, "Income:   %s\n", cli.IncomeStyle.Render(currency.Format(stats.Income, code)))
			fmt.Fprintf(&b, "Expenses: %s\n", cli.ExpenseStyle.Render(currency.Format(stats.Expenses, code)))
			fmt.Fprintf(&b, "Balance:  %s\n", cli.BoldStyle.Render(currency.Format(stats.Balance, code)))
			fmt.Fprintf(&b, "Savings:  %s", currency.Format(stats.Savings, code))
			if stats.Balance.GreaterThan(stats.Savings) || stats.Balance.LessThan(stats.Savings) {
				b.WriteString(cli.SubtleStyle.Render("  (spending exceeded income)"))
			}
			if settings.MonthlyBudget.IsPositive() {
				fmt.Fprintf(&b, "\nBudget:   %s", currency.Format(settings.MonthlyBudget, code))
				if stats.Expenses.GreaterThan(settings.MonthlyBudget) {
					b.WriteString("  " + cli.FormatWarning("over budget"))
				}
			}

			fmt.Println(cli.RenderBox(cli.ChartIcon+" "+now.Format("January 2006"), b.String()))

			if len(stats.RecentTransactions) > 0 {
				fmt.Println(cli.TitleStyle.Render("Recent transactions"))
				printTransactions(stats.RecentTransactions, settings)
			}

			return nil
		},
	}
}
