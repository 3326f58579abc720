package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/model"
	"github.com/MHiirwa/aluspend/internal/query"
)

func listCmd() *cobra.Command {
	var (
		search    string
		sortKey   string
		direction string
		txType    string
		category  string
		minAmount string
		maxAmount string
		fromDate  string
		toDate    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List ledger transactions with optional search, filtering and sorting.

Examples:
  aluspend list
  aluspend list --search grocery
  aluspend list --type expense --category Food --min 10 --max 100
  aluspend list --sort amount --direction desc
  aluspend list --from 2023-05-01 --to 2023-05-31`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			criteria, err := buildCriteria(txType, category, minAmount, maxAmount, fromDate, toDate)
			if err != nil {
				return renderLedgerError(err)
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			transactions := store.FilteredTransactions(search, query.SortKey(sortKey), query.Direction(direction))
			transactions = query.Filter(transactions, criteria)

			printTransactions(transactions, store.Settings())
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search term (matches description or category)")
	cmd.Flags().StringVar(&sortKey, "sort", "date", "sort key (date, amount, description, category)")
	cmd.Flags().StringVar(&direction, "direction", "desc", "sort direction (asc, desc)")
	cmd.Flags().StringVarP(&txType, "type", "t", "", "filter by type (income or expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by exact category")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount")
	cmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")

	return cmd
}

// buildCriteria parses the optional filter flags into query criteria.
func buildCriteria(txType, category, minAmount, maxAmount, fromDate, toDate string) (query.Criteria, error) {
	criteria := query.Criteria{
		Type:     model.TransactionType(txType),
		Category: category,
	}

	if minAmount != "" {
		parsed, err := decimal.NewFromString(minAmount)
		if err != nil {
			return query.Criteria{}, err
		}
		criteria.MinAmount = &parsed
	}
	if maxAmount != "" {
		parsed, err := decimal.NewFromString(maxAmount)
		if err != nil {
			return query.Criteria{}, err
		}
		criteria.MaxAmount = &parsed
	}
	if fromDate != "" {
		parsed, err := model.ParseDate(fromDate)
		if err != nil {
			return query.Criteria{}, err
		}
		criteria.StartDate = &parsed
	}
	if toDate != "" {
		parsed, err := model.ParseDate(toDate)
		if err != nil {
			return query.Criteria{}, err
		}
		criteria.EndDate = &parsed
	}

	return criteria, nil
}
