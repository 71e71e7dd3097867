package services

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
)

// CompanyReaderSvc defines read operations for company data.
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company, enforcing that the requester owns it.
	GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error)

	// GetCompanyOverview retrieves a company together with a summary of the
	// resources created for it (accounts, opening balance, tax profile,
	// workflow progress).
	GetCompanyOverview(ctx context.Context, companyID string, requestingUserID string) (*dto.CompanyOverviewResponse, error)

	// ListCompanies retrieves all companies owned by the requesting user.
	ListCompanies(ctx context.Context, requestingUserID string) ([]domain.Company, error)

	// ListCompanyActivities retrieves one page of a company's audit trail,
	// newest first. nextToken selects the page; an empty token starts from
	// the top.
	ListCompanyActivities(ctx context.Context, companyID string, requestingUserID string, limit int, nextToken string) (*dto.ListActivitiesResponse, error)
}

// CompanySvcFacade combines all company service interfaces.
type CompanySvcFacade interface {
	CompanyReaderSvc
}
