package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/model"
)

func addCmd() *cobra.Command {
	var (
		txType      string
		description string
		amount      string
		category    string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction in the ledger.

Examples:
  aluspend add --type expense --description "Grocery Shopping" --amount 85.30 --category Food
  aluspend add --type income --description "Salary Deposit" --amount 2450 --category Income --date 2023-05-10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			draft, err := buildDraft(txType, description, amount, category, date)
			if err != nil {
				return renderLedgerError(err)
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stored, err := store.AddTransaction(ctx, draft)
			if err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction added (%s)", shortID(stored.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "", "transaction type (income or expense)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount (positive, up to 2 decimal places)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default: today)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// buildDraft turns raw flag values into a transaction draft, mapping
// unparseable amounts and dates to their field errors.
func buildDraft(txType, description, amount, category, date string) (model.Transaction, error) {
	fields := make(map[string]string)

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		fields["amount"] = "amount must be a positive number with up to 2 decimal places"
	}

	var parsedDate model.Date
	if date != "" {
		parsedDate, err = model.ParseDate(date)
		if err != nil {
			fields["date"] = "valid date is required (YYYY-MM-DD)"
		}
	}

	if len(fields) > 0 {
		return model.Transaction{}, common.NewValidationError(fields)
	}

	return model.Transaction{
		Type:        model.TransactionType(txType),
		Description: description,
		Amount:      parsedAmount,
		Category:    category,
		Date:        parsedDate,
	}, nil
}
