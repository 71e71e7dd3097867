package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
	"github.com/codejunkiedev/betterbooks-sub003/internal/utils/pagination"
)

// companyService provides read operations over companies and the resources
// onboarding created for them.
type companyService struct {
	companyRepo    portsrepo.CompanyRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
	taxProfileRepo portsrepo.TaxProfileRepositoryFacade
	workflowRepo   portsrepo.WorkflowRepositoryFacade
	activityRepo   portsrepo.ActivityRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(repos *portsrepo.RepositoryProvider) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo:    repos.CompanyRepo,
		accountRepo:    repos.AccountRepo,
		taxProfileRepo: repos.TaxProfileRepo,
		workflowRepo:   repos.WorkflowRepo,
		activityRepo:   repos.ActivityRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// GetCompanyByID retrieves a company, enforcing that the requester owns it.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerUserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return company, nil
}

// GetCompanyOverview retrieves a company with a summary of its resources.
func (s *companyService) GetCompanyOverview(ctx context.Context, companyID string, requestingUserID string) (*dto.CompanyOverviewResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.GetCompanyByID(ctx, companyID, requestingUserID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}

	overview := &dto.CompanyOverviewResponse{
		Company:      dto.ToCompanyResponse(company),
		AccountCount: len(accounts),
	}

	profile, err := s.taxProfileRepo.FindTaxProfileByCompany(ctx, companyID)
	switch {
	case err == nil:
		overview.HasTaxProfile = true
		overview.BusinessActivity = profile.BusinessActivity
		overview.TaxID = profile.TaxID
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to load tax profile for company %s: %w", companyID, err)
	}

	progress, err := s.workflowRepo.ListProgressByCompany(ctx, companyID)
	if err != nil {
		logger.Warn("Failed to load workflow progress for overview", slog.String("company_id", companyID), slog.String("error", err.Error()))
	} else {
		overview.ProgressRecords = len(progress)
	}

	return overview, nil
}

// ListCompanies retrieves all companies owned by the requesting user.
func (s *companyService) ListCompanies(ctx context.Context, requestingUserID string) ([]domain.Company, error) {
	return s.companyRepo.ListCompaniesByOwner(ctx, requestingUserID)
}

const (
	defaultActivityPageSize = 20
	maxActivityPageSize     = 100
)

// ListCompanyActivities retrieves one page of a company's audit trail,
// newest first, using a keyset cursor over (created_at, activity_id).
func (s *companyService) ListCompanyActivities(ctx context.Context, companyID string, requestingUserID string, limit int, nextToken string) (*dto.ListActivitiesResponse, error) {
	if _, err := s.GetCompanyByID(ctx, companyID, requestingUserID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultActivityPageSize
	}
	if limit > maxActivityPageSize {
		limit = maxActivityPageSize
	}

	var before time.Time
	var beforeID string
	if nextToken != "" {
		var err error
		before, beforeID, err = pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
	}

	// Fetch one extra row to learn whether another page exists.
	entries, err := s.activityRepo.ListActivitiesByCompany(ctx, companyID, limit+1, before, beforeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for company %s: %w", companyID, err)
	}

	resp := &dto.ListActivitiesResponse{}
	if len(entries) > limit {
		last := entries[limit-1]
		resp.NextToken = pagination.EncodeToken(last.CreatedAt, last.ActivityID)
		entries = entries[:limit]
	}

	resp.Activities = make([]dto.ActivityLogResponse, len(entries))
	for i := range entries {
		resp.Activities[i] = dto.ToActivityLogResponse(&entries[i])
	}
	return resp, nil
}
