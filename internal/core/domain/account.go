package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Fixed lookup codes used when posting the opening balance journal. Both
// accounts are expected to exist in every copied chart of accounts; a
// template that lacks either code makes an opening balance impossible.
const (
	CashAccountCode          = "1000"
	OpeningBalanceEquityCode = "3000"
)

// Account is one chart-of-accounts row scoped to a single company.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	Code        string          `json:"code"`      // Ledger code, unique per company
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// TemplateKind selects which canonical account list a company is seeded from.
type TemplateKind string

// DefaultTemplateKind is the standard chart seeded for every new company.
const DefaultTemplateKind TemplateKind = "STANDARD"

// AccountTemplate is one row of the canonical chart-of-accounts list that is
// copied per company at onboarding time.
type AccountTemplate struct {
	TemplateID   string      `json:"templateID"`
	Kind         TemplateKind `json:"kind"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	DisplayOrder int         `json:"displayOrder"`
	IsActive     bool        `json:"isActive"`
}
