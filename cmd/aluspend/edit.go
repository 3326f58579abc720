package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/model"
)

func editCmd() *cobra.Command {
	var (
		txType      string
		description string
		amount      string
		category    string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long: `Replace fields of an existing transaction. Only the flags you pass
change; everything else keeps its current value. The id itself is
immutable.

Examples:
  aluspend edit 3f2a91c4 --amount 99.50
  aluspend edit 3f2a91c4 --description "Weekly groceries" --category Food`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveID(store.Transactions(), args[0])
			if err != nil {
				return renderLedgerError(err)
			}

			patch, err := buildPatch(cmd, txType, description, amount, category, date)
			if err != nil {
				return renderLedgerError(err)
			}

			updated, err := store.UpdateTransaction(ctx, id, patch)
			if err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction updated (%s)", shortID(updated.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "", "transaction type (income or expense)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount (positive, up to 2 decimal places)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")

	return cmd
}

// buildPatch collects only the flags that were explicitly set.
func buildPatch(cmd *cobra.Command, txType, description, amount, category, date string) (model.TransactionPatch, error) {
	var patch model.TransactionPatch
	fields := make(map[string]string)

	if cmd.Flags().Changed("type") {
		parsed := model.TransactionType(txType)
		patch.Type = &parsed
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &description
	}
	if cmd.Flags().Changed("amount") {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			fields["amount"] = "amount must be a positive number with up to 2 decimal places"
		} else {
			patch.Amount = &parsed
		}
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &category
	}
	if cmd.Flags().Changed("date") {
		parsed, err := model.ParseDate(date)
		if err != nil {
			fields["date"] = "valid date is required (YYYY-MM-DD)"
		} else {
			patch.Date = &parsed
		}
	}

	if len(fields) > 0 {
		return model.TransactionPatch{}, common.NewValidationError(fields)
	}

	return patch, nil
}
