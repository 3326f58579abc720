package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHiirwa/aluspend/internal/model"
)

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20230520120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20230501120000[0:GMT]
<DTEND>20230531120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20230515120000[0:GMT]
<TRNAMT>-85.30
<FITID>TXN001
<NAME>POS PURCHASE GROCERY STORE #42
</STMTTRN>
<STMTTRN>
<TRNTYPE>DIRECTDEP
<DTPOSTED>20230510120000[0:GMT]
<TRNAMT>2450.00
<FITID>TXN002
<NAME>EMPLOYER PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20230508120000[0:GMT]
<TRNAMT>-5.00
<FITID>TXN003
<NAME>MONTHLY SERVICE FEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>3000.00
<DTASOF>20230531120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	drafts, err := NewParser().ParseFile(context.Background(), strings.NewReader(sampleOFX))
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	t.Run("debit becomes expense with positive amount", func(t *testing.T) {
		tx := drafts[0]
		assert.Equal(t, model.TypeExpense, tx.Type)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("85.30")), "amount = %s", tx.Amount)
		assert.Equal(t, "GROCERY STORE 42", tx.Description)
		assert.Equal(t, "Other", tx.Category)
		assert.Equal(t, "2023-05-15", tx.Date.String())
	})

	t.Run("deposit becomes income", func(t *testing.T) {
		tx := drafts[1]
		assert.Equal(t, model.TypeIncome, tx.Type)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2450.00")))
		assert.Equal(t, "Income", tx.Category)
	})

	t.Run("fee maps to Other", func(t *testing.T) {
		tx := drafts[2]
		assert.Equal(t, model.TypeExpense, tx.Type)
		assert.Equal(t, "Other", tx.Category)
	})

	t.Run("drafts have no id and pass validation", func(t *testing.T) {
		for _, tx := range drafts {
			assert.Empty(t, tx.ID)
			assert.True(t, model.ValidateTransaction(tx).Valid(), "draft %q must be valid", tx.Description)
		}
	})
}

func TestParseFileRejectsGarbage(t *testing.T) {
	_, err := NewParser().ParseFile(context.Background(), strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean input unchanged", input: "Coffee Shop", want: "Coffee Shop"},
		{name: "strips disallowed characters", input: "AMAZON.COM*ORDER #123", want: "AMAZON.COM ORDER 123"},
		{name: "collapses whitespace", input: "A   B\tC", want: "A B C"},
		{name: "empty input gets placeholder", input: "", want: "Imported transaction"},
		{name: "all disallowed gets placeholder", input: "***", want: "Imported transaction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeDescription(tt.input))
		})
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name    string
		trnType string
		txType  model.TransactionType
		want    string
	}{
		{name: "interest", trnType: "INT", txType: model.TypeIncome, want: "Income"},
		{name: "direct deposit", trnType: "DIRECTDEP", txType: model.TypeIncome, want: "Income"},
		{name: "dividend", trnType: "DIV", txType: model.TypeIncome, want: "Income"},
		{name: "fee", trnType: "FEE", txType: model.TypeExpense, want: "Other"},
		{name: "atm", trnType: "ATM", txType: model.TypeExpense, want: "Other"},
		{name: "unknown income", trnType: "CREDIT", txType: model.TypeIncome, want: "Income"},
		{name: "unknown expense", trnType: "DEBIT", txType: model.TypeExpense, want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCategory(tt.trnType, tt.txType))
		})
	}
}
