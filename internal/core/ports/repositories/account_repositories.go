package repositories

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// AccountTemplateReader defines read operations for chart-of-accounts templates.
type AccountTemplateReader interface {
	// ListActiveTemplates retrieves the active rows of a template kind,
	// ordered by display order.
	ListActiveTemplates(ctx context.Context, kind domain.TemplateKind) ([]domain.AccountTemplate, error)
}

// AccountReader defines read operations for company account data.
type AccountReader interface {
	// FindAccountByCode retrieves a company's account by its ledger code.
	FindAccountByCode(ctx context.Context, companyID string, code string) (*domain.Account, error)

	// ListAccountsByCompany retrieves all accounts scoped to a company.
	ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for company account data.
type AccountWriter interface {
	// BulkInsertAccounts persists a batch of accounts in one round trip.
	BulkInsertAccounts(ctx context.Context, accounts []domain.Account) error

	// DeleteAccountsByCompany removes every account scoped to a company.
	// Used by onboarding compensation.
	DeleteAccountsByCompany(ctx context.Context, companyID string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountTemplateReader
	AccountReader
	AccountWriter
}
