package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/utils/pagination"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo    *MockCompanyRepository
	mockAccountRepo    *MockAccountRepository
	mockTaxProfileRepo *MockTaxProfileRepository
	mockWorkflowRepo   *MockWorkflowRepository
	mockActivityRepo   *MockActivityRepository
	service            portssvc.CompanySvcFacade

	ownerID string
	company *domain.Company
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTaxProfileRepo = new(MockTaxProfileRepository)
	suite.mockWorkflowRepo = new(MockWorkflowRepository)
	suite.mockActivityRepo = new(MockActivityRepository)

	repos := &portsrepo.RepositoryProvider{
		CompanyRepo:    suite.mockCompanyRepo,
		AccountRepo:    suite.mockAccountRepo,
		TaxProfileRepo: suite.mockTaxProfileRepo,
		WorkflowRepo:   suite.mockWorkflowRepo,
		ActivityRepo:   suite.mockActivityRepo,
	}
	suite.service = services.NewCompanyService(repos)

	suite.ownerID = uuid.NewString()
	suite.company = &domain.Company{
		CompanyID:   uuid.NewString(),
		OwnerUserID: suite.ownerID,
		Name:        "Acme Books",
		Type:        domain.LLC,
		IsActive:    true,
	}
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_Success() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()

	got, err := suite.service.GetCompanyByID(ctx, suite.company.CompanyID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(suite.company.CompanyID, got.CompanyID)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_NotOwner_Forbidden() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()

	got, err := suite.service.GetCompanyByID(ctx, suite.company.CompanyID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyOverview_WithTaxProfile() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountID: uuid.NewString()}, {AccountID: uuid.NewString()}}
	profile := &domain.TaxProfile{
		CompanyID:        suite.company.CompanyID,
		TaxID:            "TAX-12345",
		BusinessName:     "Acme Books LLC",
		BusinessActivity: "GENERAL",
	}
	progress := []domain.WorkflowProgress{{ProgressID: uuid.NewString()}}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByCompany", ctx, suite.company.CompanyID).Return(accounts, nil).Once()
	suite.mockTaxProfileRepo.On("FindTaxProfileByCompany", ctx, suite.company.CompanyID).Return(profile, nil).Once()
	suite.mockWorkflowRepo.On("ListProgressByCompany", ctx, suite.company.CompanyID).Return(progress, nil).Once()

	overview, err := suite.service.GetCompanyOverview(ctx, suite.company.CompanyID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(len(accounts), overview.AccountCount)
	suite.True(overview.HasTaxProfile)
	suite.Equal(profile.TaxID, overview.TaxID)
	suite.Equal(profile.BusinessActivity, overview.BusinessActivity)
	suite.Equal(len(progress), overview.ProgressRecords)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyOverview_NoTaxProfile() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByCompany", ctx, suite.company.CompanyID).Return([]domain.Account{}, nil).Once()
	suite.mockTaxProfileRepo.On("FindTaxProfileByCompany", ctx, suite.company.CompanyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWorkflowRepo.On("ListProgressByCompany", ctx, suite.company.CompanyID).Return([]domain.WorkflowProgress{}, nil).Once()

	overview, err := suite.service.GetCompanyOverview(ctx, suite.company.CompanyID, suite.ownerID)

	suite.Require().NoError(err)
	suite.False(overview.HasTaxProfile)
	suite.Empty(overview.TaxID)
	suite.Zero(overview.ProgressRecords)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyOverview_ProgressLoadFailureIsNonFatal() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByCompany", ctx, suite.company.CompanyID).Return([]domain.Account{}, nil).Once()
	suite.mockTaxProfileRepo.On("FindTaxProfileByCompany", ctx, suite.company.CompanyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWorkflowRepo.On("ListProgressByCompany", ctx, suite.company.CompanyID).Return(nil, errors.New("store down")).Once()

	overview, err := suite.service.GetCompanyOverview(ctx, suite.company.CompanyID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Zero(overview.ProgressRecords)
}

func (suite *CompanyServiceTestSuite) TestListCompanies() {
	ctx := context.Background()
	companies := []domain.Company{*suite.company}
	suite.mockCompanyRepo.On("ListCompaniesByOwner", ctx, suite.ownerID).Return(companies, nil).Once()

	got, err := suite.service.ListCompanies(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestListCompanyActivities_FirstPageWithMore() {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := make([]domain.ActivityLog, 3)
	for i := range entries {
		entries[i] = domain.ActivityLog{
			ActivityID:  uuid.NewString(),
			CompanyID:   suite.company.CompanyID,
			ActorUserID: suite.ownerID,
			Action:      domain.ActionCompanyOnboarded,
			CreatedAt:   base.Add(-time.Duration(i) * time.Minute),
		}
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	// limit 2 requested, limit+1 fetched; three rows back means another page.
	suite.mockActivityRepo.On("ListActivitiesByCompany", ctx, suite.company.CompanyID, 3, time.Time{}, "").Return(entries, nil).Once()

	page, err := suite.service.ListCompanyActivities(ctx, suite.company.CompanyID, suite.ownerID, 2, "")

	suite.Require().NoError(err)
	suite.Len(page.Activities, 2)
	suite.NotEmpty(page.NextToken)
	suite.Equal(entries[0].ActivityID, page.Activities[0].ActivityID)

	gotTime, gotID, err := pagination.DecodeToken(page.NextToken)
	suite.Require().NoError(err)
	suite.Equal(entries[1].ActivityID, gotID)
	suite.True(entries[1].CreatedAt.Equal(gotTime))
}

func (suite *CompanyServiceTestSuite) TestListCompanyActivities_LastPage() {
	ctx := context.Background()
	entries := []domain.ActivityLog{{
		ActivityID: uuid.NewString(),
		CompanyID:  suite.company.CompanyID,
		Action:     domain.ActionCompanyOnboarded,
		CreatedAt:  time.Now().Add(-time.Hour),
	}}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockActivityRepo.On("ListActivitiesByCompany", ctx, suite.company.CompanyID, 21, time.Time{}, "").Return(entries, nil).Once()

	page, err := suite.service.ListCompanyActivities(ctx, suite.company.CompanyID, suite.ownerID, 0, "")

	suite.Require().NoError(err)
	suite.Len(page.Activities, 1)
	suite.Empty(page.NextToken)
}

func (suite *CompanyServiceTestSuite) TestListCompanyActivities_BadToken_ValidationError() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()

	page, err := suite.service.ListCompanyActivities(ctx, suite.company.CompanyID, suite.ownerID, 10, "%%garbage%%")

	suite.Require().Error(err)
	suite.Nil(page)
	suite.True(apperrors.IsValidation(err))
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "ListActivitiesByCompany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
