// Package ofx parses OFX/QFX bank statements into ledger drafts.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/MHiirwa/aluspend/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// disallowedChars matches everything the ledger's description charset
// rejects.
var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-.,!?]+`)

// multiSpace collapses runs of whitespace left behind by sanitizing.
var multiSpace = regexp.MustCompile(`\s+`)

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns transaction drafts
// ready for the ledger's add path. Drafts carry no id; the ledger
// assigns one when the draft is accepted.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convertTransaction(ofxTx))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convertTransaction(ofxTx))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(drafts),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return drafts, nil
}

// convertTransaction converts an OFX transaction into a ledger draft.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) model.Transaction {
	// OFX uses negative amounts for debits.
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2)
	txType := model.TypeIncome
	if amount.IsNegative() {
		amount = amount.Neg()
		txType = model.TypeExpense
	}

	return model.Transaction{
		Type:        txType,
		Description: sanitizeDescription(p.extractDescription(ofxTx)),
		Amount:      amount,
		Category:    inferCategory(fmt.Sprintf("%v", ofxTx.TrnType), txType),
		Date:        model.DateFromTime(ofxTx.DtPosted.Time),
	}
}

// extractDescription tries to get a clean description from OFX data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	// Sometimes MEMO has better merchant info than a generic NAME
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	// Remove common prefixes
	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD" at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// sanitizeDescription strips characters the description charset
// rejects so imported statements pass the normal validation path.
func sanitizeDescription(name string) string {
	name = disallowedChars.ReplaceAllString(name, " ")
	name = strings.TrimSpace(multiSpace.ReplaceAllString(name, " "))
	if name == "" {
		return "Imported transaction"
	}
	return name
}

// inferCategory maps an OFX transaction type onto the ledger's
// category set.
func inferCategory(trnType string, txType model.TransactionType) string {
	switch trnType {
	case "INT", "DIRECTDEP", "DIV":
		return "Income"
	case "FEE", "SRVCHG", "ATM":
		return "Other"
	}
	if txType == model.TypeIncome {
		return "Income"
	}
	return "Other"
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
