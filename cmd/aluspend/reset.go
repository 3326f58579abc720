package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all transactions and restore default settings",
		Long: `Remove every transaction and reset settings to their defaults.
This cannot be undone; export first if you want a backup.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print(cli.FormatWarning("This deletes all data. Type 'yes' to continue: "))
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			store, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.ClearAll(ctx); err != nil {
				return renderLedgerError(err)
			}

			fmt.Println(cli.FormatSuccess("Ledger reset"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
