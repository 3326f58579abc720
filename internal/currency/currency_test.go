package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHiirwa/aluspend/internal/common"
	"github.com/MHiirwa/aluspend/internal/model"
)

func testRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"RWF": decimal.NewFromInt(1200),
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		from    string
		to      string
		want    string
		wantErr error
	}{
		{name: "usd to rwf", amount: "1", from: "USD", to: "RWF", want: "1200"},
		{name: "rwf to usd", amount: "1200", from: "RWF", to: "USD", want: "1"},
		{name: "fractional result", amount: "600", from: "RWF", to: "USD", want: "0.5"},
		{name: "identity", amount: "42.42", from: "USD", to: "USD", want: "42.42"},
		{name: "zero amount", amount: "0", from: "USD", to: "RWF", want: "0"},
		{name: "unknown source", amount: "1", from: "EUR", to: "USD", wantErr: common.ErrInvalidCurrency},
		{name: "unknown target", amount: "1", from: "USD", to: "EUR", wantErr: common.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(decimal.RequireFromString(tt.amount), tt.from, tt.to, testRates())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}

	t.Run("non-positive rate", func(t *testing.T) {
		rates := testRates()
		rates["RWF"] = decimal.Zero
		_, err := Convert(decimal.NewFromInt(1), "RWF", "USD", rates)
		assert.ErrorIs(t, err, common.ErrInvalidCurrency)
	})

	t.Run("identity skips rate lookup", func(t *testing.T) {
		got, err := Convert(decimal.NewFromInt(7), "EUR", "EUR", testRates())
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(7)))
	})
}

func TestConvertWithDefaultSettings(t *testing.T) {
	settings := model.DefaultSettings()

	got, err := Convert(decimal.RequireFromString("1200"), "RWF", "USD", settings.ConversionRates)
	require.NoError(t, err)
	assert.Equal(t, "1.00", got.StringFixed(2))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "usd symbol", amount: "85.3", code: "USD", want: "$85.30"},
		{name: "negative usd", amount: "-85.3", code: "USD", want: "-$85.30"},
		{name: "unknown code falls back", amount: "5", code: "ZZZ", want: "ZZZ5.00"},
		{name: "zero", amount: "0", code: "USD", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.amount), tt.code))
		})
	}

	t.Run("rwf uses its symbol", func(t *testing.T) {
		assert.Equal(t, Symbol("RWF")+"1200.00", Format(decimal.NewFromInt(1200), "RWF"))
	})
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "ZZZ", Symbol("ZZZ"))
}
