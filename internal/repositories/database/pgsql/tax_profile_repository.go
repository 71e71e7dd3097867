package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTaxProfileRepository creates a new repository for tax profile data.
func NewPgxTaxProfileRepository(pool *pgxpool.Pool) portsrepo.TaxProfileRepositoryFacade {
	return &PgxTaxProfileRepository{pool: pool}
}

// FindOwnerByTaxID returns the company holding the given tax identifier.
func (r *PgxTaxProfileRepository) FindOwnerByTaxID(ctx context.Context, taxID string) (string, error) {
	var companyID string
	err := r.pool.QueryRow(ctx, `SELECT company_id FROM tax_profiles WHERE tax_id = $1;`, taxID).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("%w: failed to look up tax id owner: %w", apperrors.ErrTransient, err)
	}
	return companyID, nil
}

// SaveTaxProfile persists a new tax profile. The unique index on tax_id is
// the only system-wide guard against duplicate identifiers; a violation
// surfaces as ErrConflict.
func (r *PgxTaxProfileRepository) SaveTaxProfile(ctx context.Context, profile domain.TaxProfile) error {
	query := `
		INSERT INTO tax_profiles (company_id, tax_id, business_name, business_activity, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		profile.CompanyID,
		profile.TaxID,
		profile.BusinessName,
		profile.BusinessActivity,
		profile.CreatedAt,
		profile.CreatedBy,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		return classifyWriteError(err, "failed to save tax profile for company "+profile.CompanyID)
	}
	return nil
}

// DeleteTaxProfileByCompany removes a company's tax profile.
func (r *PgxTaxProfileRepository) DeleteTaxProfileByCompany(ctx context.Context, companyID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tax_profiles WHERE company_id = $1;`, companyID)
	if err != nil {
		return classifyWriteError(err, "failed to delete tax profile for company "+companyID)
	}
	return nil
}

// FindTaxProfileByCompany retrieves a company's tax profile.
func (r *PgxTaxProfileRepository) FindTaxProfileByCompany(ctx context.Context, companyID string) (*domain.TaxProfile, error) {
	query := `
		SELECT company_id, tax_id, business_name, business_activity, created_at, created_by, last_updated_at, last_updated_by
		FROM tax_profiles
		WHERE company_id = $1;
	`
	var p domain.TaxProfile
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&p.CompanyID,
		&p.TaxID,
		&p.BusinessName,
		&p.BusinessActivity,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax profile for company %s: %w", companyID, err)
	}
	return &p, nil
}
