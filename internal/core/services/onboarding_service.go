package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/saga"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
)

var (
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrCompanyTypeRequired = errors.New("company type is required")
	ErrBalanceNotPositive  = errors.New("opening balance amount must be positive")
	ErrBalanceDateMissing  = errors.New("opening balance date is required")
	ErrBalanceDateInFuture = errors.New("opening balance date must not be in the future")
)

// taxIDTakenReason is reported to the caller when the tax profile step was
// skipped because another company already holds the identifier.
const taxIDTakenReason = "tax identifier already registered to another company"

// onboardingService runs the company onboarding pipeline as a saga: several
// interdependent records are created across independent store calls, and on
// any hard failure everything already created is deleted again in reverse
// order. A run ends either fully applied or fully rolled back.
type onboardingService struct {
	companyRepo    portsrepo.CompanyRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
	journalRepo    portsrepo.JournalRepositoryFacade
	taxProfileRepo portsrepo.TaxProfileRepositoryFacade
	workflowRepo   portsrepo.WorkflowRepositoryFacade
	activityRepo   portsrepo.ActivityAppender
	publisher      portssvc.OnboardingEventPublisher // optional
}

// NewOnboardingService creates a new OnboardingService.
func NewOnboardingService(repos *portsrepo.RepositoryProvider, publisher portssvc.OnboardingEventPublisher) portssvc.OnboardingSvcFacade {
	return &onboardingService{
		companyRepo:    repos.CompanyRepo,
		accountRepo:    repos.AccountRepo,
		journalRepo:    repos.JournalRepo,
		taxProfileRepo: repos.TaxProfileRepo,
		workflowRepo:   repos.WorkflowRepo,
		activityRepo:   repos.ActivityRepo,
		publisher:      publisher,
	}
}

// Ensure onboardingService implements the OnboardingSvcFacade interface
var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

// onboardingState is the in-memory bookkeeping of one run: which steps
// completed and the identifiers needed to compensate them. It lives for a
// single request and is discarded afterwards.
type onboardingState struct {
	company           domain.Company
	accountsCreated   int
	journalID         string
	openingCreated    bool
	taxProfileCreated bool
	taxSkipReason     string
	progressCount     int
}

// CompleteOnboarding validates the request and executes the pipeline:
// company, chart of accounts, optional opening balance, optional tax
// profile, workflow progress, then a best-effort audit write.
func (s *onboardingService) CompleteOnboarding(ctx context.Context, req dto.CompleteOnboardingRequest, requesterUserID string) (*domain.OnboardingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateOnboardingRequest(req); err != nil {
		logger.Warn("Onboarding request rejected", slog.String("error", err.Error()))
		return nil, err
	}

	state := &onboardingState{}
	steps := []saga.Step{
		s.createCompanyStep(req, requesterUserID, state),
		s.copyChartOfAccountsStep(requesterUserID, state),
		s.createOpeningBalanceStep(req, requesterUserID, state),
		s.createTaxProfileStep(req, requesterUserID, state),
		s.initWorkflowProgressStep(req, requesterUserID, state),
	}

	result, err := saga.Execute(ctx, steps)
	if err != nil {
		// The original triggering error is what the caller receives;
		// compensation failures were already logged as warnings.
		return nil, err
	}

	s.recordActivity(ctx, req, requesterUserID, state)
	if s.publisher != nil {
		s.publisher.PublishCompanyOnboarded(state.company)
	}

	logger.Info("Company onboarding completed",
		slog.String("company_id", state.company.CompanyID),
		slog.Int("accounts_created", state.accountsCreated),
		slog.Bool("opening_balance", state.openingCreated),
		slog.Bool("tax_profile", state.taxProfileCreated),
		slog.Int("progress_records", state.progressCount),
		slog.Any("skipped_steps", result.Skipped),
	)

	return &domain.OnboardingResult{
		CompanyID:             state.company.CompanyID,
		AccountsCreated:       state.accountsCreated,
		OpeningBalanceCreated: state.openingCreated,
		JournalID:             state.journalID,
		TaxProfileCreated:     state.taxProfileCreated,
		TaxProfileSkipReason:  state.taxSkipReason,
		ProgressRecordsCount:  state.progressCount,
	}, nil
}

// validateOnboardingRequest checks preconditions before any store write.
// Failure here creates zero resources and needs no compensation.
func validateOnboardingRequest(req dto.CompleteOnboardingRequest) error {
	if req.Company.Name == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCompanyNameRequired)
	}
	if req.Company.Type == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCompanyTypeRequired)
	}
	if !req.SkipOpeningBalance && req.OpeningBalance != nil {
		if req.OpeningBalance.Amount.IsNegative() || req.OpeningBalance.Amount.IsZero() {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBalanceNotPositive)
		}
		if req.OpeningBalance.Date.IsZero() {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBalanceDateMissing)
		}
		if req.OpeningBalance.Date.After(time.Now()) {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBalanceDateInFuture)
		}
	}
	return nil
}

func (s *onboardingService) createCompanyStep(req dto.CompleteOnboardingRequest, requesterUserID string, state *onboardingState) saga.Step {
	return saga.Step{
		Name: "create_company",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			now := time.Now()
			company := domain.Company{
				CompanyID:          uuid.NewString(),
				OwnerUserID:        requesterUserID,
				Name:               req.Company.Name,
				Type:               domain.CompanyType(req.Company.Type),
				RegistrationNumber: req.Company.RegistrationNumber,
				TaxNumber:          req.Company.TaxNumber,
				IsActive:           true,
				AuditFields:        domain.NewAuditFields(requesterUserID, now),
			}
			if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
				return saga.Completed, fmt.Errorf("failed to create company: %w", err)
			}
			state.company = company
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return s.companyRepo.DeleteCompany(ctx, state.company.CompanyID)
		},
	}
}

func (s *onboardingService) copyChartOfAccountsStep(requesterUserID string, state *onboardingState) saga.Step {
	return saga.Step{
		Name: "copy_chart_of_accounts",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			templates, err := s.accountRepo.ListActiveTemplates(ctx, domain.DefaultTemplateKind)
			if err != nil {
				return saga.Completed, fmt.Errorf("failed to read account templates: %w", err)
			}
			if len(templates) == 0 {
				return saga.Completed, fmt.Errorf("%w: account template %s has no active rows", apperrors.ErrDependency, domain.DefaultTemplateKind)
			}

			now := time.Now()
			accounts := make([]domain.Account, len(templates))
			for i, tmpl := range templates {
				accounts[i] = domain.Account{
					AccountID:   uuid.NewString(),
					CompanyID:   state.company.CompanyID,
					Code:        tmpl.Code,
					Name:        tmpl.Name,
					AccountType: tmpl.AccountType,
					IsActive:    true,
					AuditFields: domain.NewAuditFields(requesterUserID, now),
				}
			}
			if err := s.accountRepo.BulkInsertAccounts(ctx, accounts); err != nil {
				return saga.Completed, fmt.Errorf("failed to copy chart of accounts: %w", err)
			}
			state.accountsCreated = len(accounts)
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return s.accountRepo.DeleteAccountsByCompany(ctx, state.company.CompanyID)
		},
	}
}

func (s *onboardingService) createOpeningBalanceStep(req dto.CompleteOnboardingRequest, requesterUserID string, state *onboardingState) saga.Step {
	return saga.Step{
		Name: "create_opening_balance",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			if !req.HasOpeningBalance() {
				return saga.Skipped, nil
			}

			// Both legs must resolve from the just-copied chart; a template
			// without either code cannot carry a balanced opening entry.
			cash, err := s.accountRepo.FindAccountByCode(ctx, state.company.CompanyID, domain.CashAccountCode)
			if err != nil {
				return saga.Completed, fmt.Errorf("%w: cash account %s not found: %s", apperrors.ErrDependency, domain.CashAccountCode, err)
			}
			equity, err := s.accountRepo.FindAccountByCode(ctx, state.company.CompanyID, domain.OpeningBalanceEquityCode)
			if err != nil {
				return saga.Completed, fmt.Errorf("%w: equity account %s not found: %s", apperrors.ErrDependency, domain.OpeningBalanceEquityCode, err)
			}

			now := time.Now()
			journal := domain.Journal{
				JournalID:   uuid.NewString(),
				CompanyID:   state.company.CompanyID,
				JournalDate: req.OpeningBalance.Date,
				Description: "Opening balance",
				Source:      domain.OpeningBalanceSource,
				Status:      domain.Posted,
				AuditFields: domain.NewAuditFields(requesterUserID, now),
			}
			lines := []domain.JournalLine{
				{
					LineID:      uuid.NewString(),
					JournalID:   journal.JournalID,
					AccountID:   cash.AccountID,
					Amount:      req.OpeningBalance.Amount,
					LineType:    domain.Debit,
					AuditFields: domain.NewAuditFields(requesterUserID, now),
				},
				{
					LineID:      uuid.NewString(),
					JournalID:   journal.JournalID,
					AccountID:   equity.AccountID,
					Amount:      req.OpeningBalance.Amount,
					LineType:    domain.Credit,
					AuditFields: domain.NewAuditFields(requesterUserID, now),
				},
			}
			if err := domain.ValidateBalanced(lines); err != nil {
				return saga.Completed, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
			}
			if err := s.journalRepo.SaveJournal(ctx, journal, lines); err != nil {
				return saga.Completed, fmt.Errorf("failed to post opening balance: %w", err)
			}
			state.journalID = journal.JournalID
			state.openingCreated = true
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return s.journalRepo.DeleteJournalCascade(ctx, state.journalID)
		},
	}
}

func (s *onboardingService) createTaxProfileStep(req dto.CompleteOnboardingRequest, requesterUserID string, state *onboardingState) saga.Step {
	return saga.Step{
		Name: "create_tax_profile",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			if !req.HasTaxInfo() {
				return saga.Skipped, nil
			}

			ownerID, err := s.taxProfileRepo.FindOwnerByTaxID(ctx, req.TaxInfo.TaxID)
			switch {
			case err == nil && ownerID != state.company.CompanyID:
				// A duplicate tax id is an expected, recoverable business
				// condition: skip the profile, keep the rest of the run.
				state.taxSkipReason = taxIDTakenReason
				return saga.Skipped, nil
			case err != nil && !errors.Is(err, apperrors.ErrNotFound):
				return saga.Completed, fmt.Errorf("failed to check tax identifier: %w", err)
			}

			profile := domain.TaxProfile{
				CompanyID:        state.company.CompanyID,
				TaxID:            req.TaxInfo.TaxID,
				BusinessName:     req.TaxInfo.BusinessName,
				BusinessActivity: req.TaxInfo.BusinessActivity,
				AuditFields:      domain.NewAuditFields(requesterUserID, time.Now()),
			}
			if err := s.taxProfileRepo.SaveTaxProfile(ctx, profile); err != nil {
				if apperrors.IsConflict(err) {
					// Lost the race against a concurrent registration of the
					// same identifier. Same treatment as the pre-check hit.
					state.taxSkipReason = taxIDTakenReason
					return saga.Skipped, nil
				}
				return saga.Completed, fmt.Errorf("failed to create tax profile: %w", err)
			}
			state.taxProfileCreated = true
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return s.taxProfileRepo.DeleteTaxProfileByCompany(ctx, state.company.CompanyID)
		},
	}
}

func (s *onboardingService) initWorkflowProgressStep(req dto.CompleteOnboardingRequest, requesterUserID string, state *onboardingState) saga.Step {
	return saga.Step{
		Name: "init_workflow_progress",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			// Depends on the tax profile actually existing, not just on the
			// request asking for one.
			if !state.taxProfileCreated {
				return saga.Skipped, nil
			}

			scenarios, err := s.workflowRepo.ListMandatoryScenarios(ctx, req.TaxInfo.BusinessActivity)
			if err != nil {
				return saga.Completed, fmt.Errorf("failed to read mandatory scenarios: %w", err)
			}

			now := time.Now()
			rows := make([]domain.WorkflowProgress, len(scenarios))
			for i, scenario := range scenarios {
				rows[i] = domain.WorkflowProgress{
					ProgressID:       uuid.NewString(),
					CompanyID:        state.company.CompanyID,
					ScenarioID:       scenario.ScenarioID,
					BusinessActivity: scenario.BusinessActivity,
					Status:           domain.ProgressPending,
					AuditFields:      domain.NewAuditFields(requesterUserID, now),
				}
			}
			if len(rows) > 0 {
				if err := s.workflowRepo.BulkInsertProgress(ctx, rows); err != nil {
					return saga.Completed, fmt.Errorf("failed to initialize workflow progress: %w", err)
				}
			}
			state.progressCount = len(rows)
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return s.workflowRepo.DeleteProgressByCompanyAndActivity(ctx, state.company.CompanyID, req.TaxInfo.BusinessActivity)
		},
	}
}

// recordActivity appends the audit record for a successful run. The write is
// fire-and-forget: a failure is logged and never changes the outcome.
func (s *onboardingService) recordActivity(ctx context.Context, req dto.CompleteOnboardingRequest, requesterUserID string, state *onboardingState) {
	logger := middleware.GetLoggerFromCtx(ctx)

	details, err := json.Marshal(map[string]any{
		"companyName":       req.Company.Name,
		"accountsCreated":   state.accountsCreated,
		"openingBalance":    state.openingCreated,
		"taxProfileCreated": state.taxProfileCreated,
		"progressRecords":   state.progressCount,
	})
	if err != nil {
		logger.Warn("Failed to marshal activity details", slog.String("error", err.Error()))
		return
	}

	entry := domain.ActivityLog{
		ActivityID:  uuid.NewString(),
		CompanyID:   state.company.CompanyID,
		ActorUserID: requesterUserID,
		Action:      domain.ActionCompanyOnboarded,
		Details:     string(details),
		CreatedAt:   time.Now(),
	}
	if err := s.activityRepo.AppendActivity(ctx, entry); err != nil {
		logger.Warn("Failed to append activity log",
			slog.String("company_id", state.company.CompanyID),
			slog.String("error", err.Error()),
		)
	}
}
