package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a ledger from a JSON export",
		Long: `Import transactions and settings from a JSON document produced by
the export command. The existing ledger is replaced.

Example:
  aluspend import backup.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.Import(ctx, data); err != nil {
				return renderLedgerError(err)
			}

			count := len(store.Transactions())
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %s", count, args[0])))
			return nil
		},
	}
}
