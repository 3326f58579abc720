// Package currency converts and formats monetary amounts using the
// static conversion-rate table from the ledger settings.
package currency

import (
	"fmt"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/common"
)

// Convert maps an amount from one currency to another through the
// reference currency: rates express each currency relative to USD, so
// the amount is divided by the source rate and multiplied by the
// target rate. Converting a currency to itself is the identity.
func Convert(amount decimal.Decimal, from, to string, rates map[string]decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", common.ErrInvalidCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", common.ErrInvalidCurrency, to)
	}
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive conversion rate", common.ErrInvalidCurrency)
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

// Format renders an amount with the currency's symbol, fixed at two
// fractional digits. Unknown currencies use the code itself as the
// symbol.
func Format(amount decimal.Decimal, code string) string {
	symbol := Symbol(code)
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// Symbol returns the display symbol for a currency code, falling back
// to the code when the currency is unknown.
func Symbol(code string) string {
	if cur := money.GetCurrency(code); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return code
}
