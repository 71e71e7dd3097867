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

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCompanyRepository creates a new repository for company data.
func NewPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{pool: pool}
}

// SaveCompany persists a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, owner_user_id, name, type, registration_number, tax_number, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		company.CompanyID,
		company.OwnerUserID,
		company.Name,
		company.Type,
		company.RegistrationNumber,
		company.TaxNumber,
		company.IsActive,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return classifyWriteError(err, "failed to save company "+company.CompanyID)
	}
	return nil
}

// DeleteCompany removes a company row.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return classifyWriteError(err, "failed to delete company "+companyID)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, owner_user_id, name, type, registration_number, tax_number, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1;
	`
	var c domain.Company
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&c.CompanyID,
		&c.OwnerUserID,
		&c.Name,
		&c.Type,
		&c.RegistrationNumber,
		&c.TaxNumber,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}
	return &c, nil
}

// ListCompaniesByOwner retrieves all companies owned by a user.
func (r *PgxCompanyRepository) ListCompaniesByOwner(ctx context.Context, ownerUserID string) ([]domain.Company, error) {
	query := `
		SELECT company_id, owner_user_id, name, type, registration_number, tax_number, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE owner_user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for owner %s: %w", ownerUserID, err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.CompanyID,
			&c.OwnerUserID,
			&c.Name,
			&c.Type,
			&c.RegistrationNumber,
			&c.TaxNumber,
			&c.IsActive,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows for owner %s: %w", ownerUserID, err)
	}
	return companies, nil
}
