package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// JournalSource records what produced a journal entry.
type JournalSource string

// OpeningBalanceSource marks the journal posted during company onboarding.
const OpeningBalanceSource JournalSource = "OPENING_BALANCE"

// LineType indicates whether a journal line is a Debit or a Credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// Journal represents a single, balanced financial event composed of lines.
type Journal struct {
	JournalID   string        `json:"journalID"` // Primary Key (UUID)
	CompanyID   string        `json:"companyID"` // FK -> companies.company_id
	JournalDate time.Time     `json:"journalDate"`
	Description string        `json:"description"`
	Source      JournalSource `json:"source"`
	Status      JournalStatus `json:"status"`
	AuditFields
}

// JournalLine is a single line item within a Journal, affecting one account.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (UUID)
	JournalID string          `json:"journalID"` // FK -> journals.journal_id
	AccountID string          `json:"accountID"` // FK -> accounts.account_id
	Amount    decimal.Decimal `json:"amount"`    // Positive value
	LineType  LineType        `json:"lineType"`
	AuditFields
}

var (
	// ErrUnbalancedLines indicates debit and credit totals differ.
	ErrUnbalancedLines = errors.New("journal lines do not balance")
	// ErrNonPositiveAmount indicates a line amount is zero or negative.
	ErrNonPositiveAmount = errors.New("journal line amount must be positive")
)

// ValidateBalanced enforces the double-entry balance law: every line amount
// is positive and the debit and credit sides sum to the same total.
func ValidateBalanced(lines []JournalLine) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrNonPositiveAmount
		}
		if line.LineType == Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	if !debits.Equal(credits) {
		return ErrUnbalancedLines
	}
	return nil
}
