package repositories

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// TaxProfileReader defines read operations for tax profile data.
type TaxProfileReader interface {
	// FindOwnerByTaxID returns the company ID holding the given tax
	// identifier, or apperrors.ErrNotFound when it is unregistered.
	FindOwnerByTaxID(ctx context.Context, taxID string) (string, error)

	// FindTaxProfileByCompany retrieves a company's tax profile.
	FindTaxProfileByCompany(ctx context.Context, companyID string) (*domain.TaxProfile, error)
}

// TaxProfileWriter defines write operations for tax profile data.
type TaxProfileWriter interface {
	// SaveTaxProfile persists a new tax profile. Returns an error classified
	// as apperrors.ErrConflict when the tax identifier is already taken.
	SaveTaxProfile(ctx context.Context, profile domain.TaxProfile) error

	// DeleteTaxProfileByCompany removes a company's tax profile. Used by
	// onboarding compensation.
	DeleteTaxProfileByCompany(ctx context.Context, companyID string) error
}

// TaxProfileRepositoryFacade combines all tax profile repository interfaces.
type TaxProfileRepositoryFacade interface {
	TaxProfileReader
	TaxProfileWriter
}
