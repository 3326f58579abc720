package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to JSON",
		Long: `Export all transactions and settings as a JSON document
suitable for backup or transfer to another machine.

Example:
  aluspend export -o backup.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := store.Export(time.Now())
			if err != nil {
				return renderLedgerError(err)
			}

			if output == "" || output == "-" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			count := len(store.Transactions())
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", count, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write to (default: stdout)")

	return cmd
}
