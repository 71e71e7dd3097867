package pgsql

import (
	"context"
	"fmt"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkflowRepository struct {
	pool *pgxpool.Pool
}

// NewPgxWorkflowRepository creates a new repository for workflow scenario
// and progress data.
func NewPgxWorkflowRepository(pool *pgxpool.Pool) portsrepo.WorkflowRepositoryFacade {
	return &PgxWorkflowRepository{pool: pool}
}

// ListMandatoryScenarios retrieves the mandatory scenarios for an activity.
func (r *PgxWorkflowRepository) ListMandatoryScenarios(ctx context.Context, businessActivity string) ([]domain.WorkflowScenario, error) {
	query := `
		SELECT scenario_id, business_activity, name, is_mandatory
		FROM workflow_scenarios
		WHERE business_activity = $1 AND is_mandatory = TRUE
		ORDER BY scenario_id;
	`
	rows, err := r.pool.Query(ctx, query, businessActivity)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandatory scenarios for activity %s: %w", businessActivity, err)
	}
	defer rows.Close()

	var scenarios []domain.WorkflowScenario
	for rows.Next() {
		var s domain.WorkflowScenario
		if err := rows.Scan(&s.ScenarioID, &s.BusinessActivity, &s.Name, &s.IsMandatory); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scenario rows: %w", err)
	}
	return scenarios, nil
}

// BulkInsertProgress persists a batch of progress rows using pgx batching.
func (r *PgxWorkflowRepository) BulkInsertProgress(ctx context.Context, rows []domain.WorkflowProgress) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO workflow_progress (progress_id, company_id, scenario_id, business_activity, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query,
			row.ProgressID,
			row.CompanyID,
			row.ScenarioID,
			row.BusinessActivity,
			row.Status,
			row.CreatedAt,
			row.CreatedBy,
			row.LastUpdatedAt,
			row.LastUpdatedBy,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyWriteError(err, fmt.Sprintf("failed to bulk insert %d progress rows for company %s", len(rows), rows[0].CompanyID))
	}
	return nil
}

// DeleteProgressByCompanyAndActivity removes a company's progress rows for
// one business activity.
func (r *PgxWorkflowRepository) DeleteProgressByCompanyAndActivity(ctx context.Context, companyID string, businessActivity string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workflow_progress WHERE company_id = $1 AND business_activity = $2;`, companyID, businessActivity)
	if err != nil {
		return classifyWriteError(err, "failed to delete progress rows for company "+companyID)
	}
	return nil
}

// ListProgressByCompany retrieves all progress rows for a company.
func (r *PgxWorkflowRepository) ListProgressByCompany(ctx context.Context, companyID string) ([]domain.WorkflowProgress, error) {
	query := `
		SELECT progress_id, company_id, scenario_id, business_activity, status, created_at, created_by, last_updated_at, last_updated_by
		FROM workflow_progress
		WHERE company_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress rows for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var progress []domain.WorkflowProgress
	for rows.Next() {
		var p domain.WorkflowProgress
		if err := rows.Scan(
			&p.ProgressID,
			&p.CompanyID,
			&p.ScenarioID,
			&p.BusinessActivity,
			&p.Status,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress rows for company %s: %w", companyID, err)
	}
	return progress, nil
}
