package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "import-ofx <file>",
		Short: "Import transactions from an OFX/QFX file",
		Long: `Parse a bank-exported OFX or QFX file and add its transactions to
the ledger. Categories are inferred from the transaction type unless
--category overrides them.

Example:
  aluspend import-ofx statement.qfx --category Other`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening OFX file: %w", err)
			}
			defer func() { _ = file.Close() }()

			drafts, err := ofx.NewParser().ParseFile(ctx, file)
			if err != nil {
				return renderLedgerError(err)
			}
			if len(drafts) == 0 {
				fmt.Println(cli.FormatWarning("No transactions found in " + args[0]))
				return nil
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bar := progressbar.NewOptions(len(drafts),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			var added, skipped int
			for _, draft := range drafts {
				if category != "" {
					draft.Category = category
				}
				if _, err := store.AddTransaction(ctx, draft); err != nil {
					skipped++
				} else {
					added++
				}
				_ = bar.Add(1)
			}

			msg := fmt.Sprintf("Imported %d transactions from %s", added, args[0])
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Override the category for all imported transactions")

	return cmd
}
