package model

import (
	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency all conversion rates are expressed
// against, by convention with a rate of 1.
const ReferenceCurrency = "USD"

// Settings holds the process-wide configuration: the display currency,
// the static conversion-rate table and an optional monthly budget.
type Settings struct {
	BaseCurrency    string                     `json:"baseCurrency"`
	ConversionRates map[string]decimal.Decimal `json:"conversionRates"`
	MonthlyBudget   decimal.Decimal            `json:"monthlyBudget"`
}

// supportedCurrencies is the canonical currency set. Every member has
// a default conversion rate relative to USD.
var supportedCurrencies = []string{"USD", "RWF"}

// SupportedCurrencies returns the currency codes settings may select.
func SupportedCurrencies() []string {
	out := make([]string, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupportedCurrency reports whether code is in the supported set.
func IsSupportedCurrency(code string) bool {
	for _, c := range supportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings used before the user saves any:
// USD base currency and an approximate USD/RWF rate.
func DefaultSettings() Settings {
	return Settings{
		BaseCurrency: ReferenceCurrency,
		ConversionRates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"RWF": decimal.NewFromInt(1200),
		},
		MonthlyBudget: decimal.Zero,
	}
}

// Clone returns a deep copy, so callers can hand out settings without
// sharing the rate table.
func (s Settings) Clone() Settings {
	rates := make(map[string]decimal.Decimal, len(s.ConversionRates))
	for code, rate := range s.ConversionRates {
		rates[code] = rate
	}
	s.ConversionRates = rates
	return s
}
