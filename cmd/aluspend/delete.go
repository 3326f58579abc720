package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Permanently remove a transaction from the ledger. There is no undo.

Example:
  aluspend delete 3f2a91c4`,
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

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction deleted (%s)", shortID(id))))
			return nil
		},
	}

	return cmd
}
