package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/currency"
	"github.com/MHiirwa/aluspend/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage ledger settings",
		Long:  `Show and change the base currency, conversion rates and monthly budget.`,
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setCurrencyCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(setRateCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			settings := store.Settings()

			fmt.Printf("Base currency:  %s (%s)\n", settings.BaseCurrency, currency.Symbol(settings.BaseCurrency))
			if settings.MonthlyBudget.IsPositive() {
				fmt.Printf("Monthly budget: %s\n", currency.Format(settings.MonthlyBudget, settings.BaseCurrency))
			} else {
				fmt.Printf("Monthly budget: %s\n", cli.SubtleStyle.Render("unset"))
			}

			fmt.Println("Conversion rates (per 1 USD):")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			codes := make([]string, 0, len(settings.ConversionRates))
			for code := range settings.ConversionRates {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Fprintf(w, "  %s\t%s\n", code, settings.ConversionRates[code])
			}

			return nil
		},
	}
}

func setCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-currency <code>",
		Short: "Set the base currency",
		Long: `Set the currency amounts are displayed in. Supported: ` +
			strings.Join(model.SupportedCurrencies(), ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := store.Settings()
			settings.BaseCurrency = strings.ToUpper(args[0])

			if err := store.UpdateSettings(ctx, settings); err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess("Base currency set to " + settings.BaseCurrency))
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-budget <amount>",
		Short: "Set the monthly budget",
		Long:  `Set the monthly spending budget. Zero clears it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			budget, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid budget amount: %s", args[0])
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := store.Settings()
			settings.MonthlyBudget = budget

			if err := store.UpdateSettings(ctx, settings); err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess("Monthly budget updated"))
			return nil
		},
	}
}

func setRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-rate <code> <rate>",
		Short: "Update a conversion rate",
		Long: `Update the conversion rate for a currency already in the table,
expressed relative to USD (1 USD = rate units of the currency).

Example:
  aluspend settings set-rate RWF 1250`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rate, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid rate: %s", args[1])
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			code := strings.ToUpper(args[0])
			if err := store.SetConversionRate(ctx, code, rate); err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Rate updated: 1 USD = %s %s", rate, code)))
			return nil
		},
	}
}
