package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/query"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known categories and their icons",
		Long: `List the category names the dashboard has dedicated icons for.
Transactions may use any category; unknown ones get the generic
receipt icon.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Icon"))
			for _, name := range query.KnownCategories() {
				fmt.Fprintf(w, "%s\t%s\n", name, query.CategoryIcon(name))
			}
		},
	}
}
