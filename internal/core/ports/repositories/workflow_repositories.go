package repositories

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// ScenarioReader defines read operations for workflow scenario definitions.
type ScenarioReader interface {
	// ListMandatoryScenarios retrieves the mandatory scenarios declared for
	// a business activity.
	ListMandatoryScenarios(ctx context.Context, businessActivity string) ([]domain.WorkflowScenario, error)
}

// ProgressReader defines read operations for workflow progress rows.
type ProgressReader interface {
	// ListProgressByCompany retrieves all progress rows for a company.
	ListProgressByCompany(ctx context.Context, companyID string) ([]domain.WorkflowProgress, error)
}

// ProgressWriter defines write operations for workflow progress rows.
type ProgressWriter interface {
	// BulkInsertProgress persists a batch of progress rows in one round trip.
	BulkInsertProgress(ctx context.Context, rows []domain.WorkflowProgress) error

	// DeleteProgressByCompanyAndActivity removes a company's progress rows
	// for one business activity. Used by onboarding compensation.
	DeleteProgressByCompanyAndActivity(ctx context.Context, companyID string, businessActivity string) error
}

// WorkflowRepositoryFacade combines all workflow repository interfaces.
type WorkflowRepositoryFacade interface {
	ScenarioReader
	ProgressReader
	ProgressWriter
}
