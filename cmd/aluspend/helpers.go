package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/MHiirwa/aluspend/internal/cli"
	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/config"
	"github.com/MHiirwa/aluspend/internal/currency"
	"github.com/MHiirwa/aluspend/internal/ledger"
	"github.com/MHiirwa/aluspend/internal/model"
	"github.com/MHiirwa/aluspend/internal/storage"
)

// openLedger initializes storage and an initialized ledger store. The
// returned cleanup closes the database.
func openLedger(ctx context.Context) (*ledger.Store, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	docs, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, err
	}

	store := ledger.New(docs)
	if err := store.Initialize(ctx); err != nil {
		_ = docs.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = docs.Close() }
	return store, cleanup, nil
}

// renderLedgerError prints validation failures per field and
// everything else as a single message, then returns a terse error so
// the process exits non-zero.
func renderLedgerError(err error) error {
	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]string, 0, len(validationErr.Fields))
		for field := range validationErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Println(cli.FormatError(fmt.Sprintf("%s: %s", field, validationErr.Fields[field])))
		}
		return errors.New("validation failed")
	}

	fmt.Println(cli.FormatError(err.Error()))
	return err
}

// formatInBase renders an amount in the ledger's base currency.
func formatInBase(settings model.Settings, t model.Transaction) string {
	return currency.Format(t.Amount, settings.BaseCurrency)
}

// printTransactions renders a transaction table.
func printTransactions(transactions []model.Transaction, settings model.Settings) {
	if len(transactions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions found."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Type"),
		cli.TableHeaderStyle.Render("Description"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Amount"))

	for _, t := range transactions {
		amount := formatInBase(settings, t)
		if t.Type == model.TypeExpense {
			amount = cli.ExpenseStyle.Render("-" + amount)
		} else {
			amount = cli.IncomeStyle.Render("+" + amount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), t.Date, t.Type, t.Description, t.Category, amount)
	}
}

// shortID trims a UUID for display; full ids still work everywhere an
// id is accepted.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a possibly-shortened id prefix to a full
// transaction id. Ambiguous prefixes are an error.
func resolveID(transactions []model.Transaction, prefix string) (string, error) {
	var match string
	for _, t := range transactions {
		if t.ID == prefix {
			return t.ID, nil
		}
		if len(prefix) >= 4 && len(t.ID) > len(prefix) && t.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("ambiguous transaction id prefix: %s", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", common.ErrNotFound, prefix)
	}
	return match, nil
}
