package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPgxActivityRepository creates a new repository for the audit log.
func NewPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{pool: pool}
}

// AppendActivity persists one audit record.
func (r *PgxActivityRepository) AppendActivity(ctx context.Context, entry domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (activity_id, company_id, actor_user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ActivityID,
		entry.CompanyID,
		entry.ActorUserID,
		entry.Action,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return classifyWriteError(err, "failed to append activity "+entry.ActivityID)
	}
	return nil
}

// ListActivitiesByCompany retrieves up to limit records for a company,
// newest first. The (before, beforeID) pair is a keyset cursor; a zero
// before time means "from the top".
func (r *PgxActivityRepository) ListActivitiesByCompany(ctx context.Context, companyID string, limit int, before time.Time, beforeID string) ([]domain.ActivityLog, error) {
	query := `
		SELECT activity_id, company_id, actor_user_id, action, details, created_at
		FROM activity_logs
		WHERE company_id = $1
		ORDER BY created_at DESC, activity_id DESC
		LIMIT $2;
	`
	args := []any{companyID, limit}
	if !before.IsZero() {
		query = `
			SELECT activity_id, company_id, actor_user_id, action, details, created_at
			FROM activity_logs
			WHERE company_id = $1 AND (created_at, activity_id) < ($3, $4)
			ORDER BY created_at DESC, activity_id DESC
			LIMIT $2;
		`
		args = append(args, before, beforeID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var entries []domain.ActivityLog
	for rows.Next() {
		var e domain.ActivityLog
		if err := rows.Scan(&e.ActivityID, &e.CompanyID, &e.ActorUserID, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading activity rows: %w", err)
	}
	return entries, nil
}
