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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAccountRepository creates a new repository for chart-of-accounts data.
func NewPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// ListActiveTemplates retrieves the active rows of a template kind, ordered
// by display order.
func (r *PgxAccountRepository) ListActiveTemplates(ctx context.Context, kind domain.TemplateKind) ([]domain.AccountTemplate, error) {
	query := `
		SELECT template_id, kind, code, name, account_type, display_order, is_active
		FROM account_templates
		WHERE kind = $1 AND is_active = TRUE
		ORDER BY display_order;
	`
	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list account templates of kind %s: %w", kind, err)
	}
	defer rows.Close()

	var templates []domain.AccountTemplate
	for rows.Next() {
		var t domain.AccountTemplate
		if err := rows.Scan(
			&t.TemplateID,
			&t.Kind,
			&t.Code,
			&t.Name,
			&t.AccountType,
			&t.DisplayOrder,
			&t.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account template rows: %w", err)
	}
	return templates, nil
}

// BulkInsertAccounts persists a batch of accounts using pgx batching.
func (r *PgxAccountRepository) BulkInsertAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	query := `
		INSERT INTO accounts (account_id, company_id, code, name, account_type, balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		batch.Queue(query,
			acc.AccountID,
			acc.CompanyID,
			acc.Code,
			acc.Name,
			acc.AccountType,
			acc.Balance,
			acc.IsActive,
			acc.CreatedAt,
			acc.CreatedBy,
			acc.LastUpdatedAt,
			acc.LastUpdatedBy,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyWriteError(err, fmt.Sprintf("failed to bulk insert %d accounts for company %s", len(accounts), accounts[0].CompanyID))
	}
	return nil
}

// DeleteAccountsByCompany removes every account scoped to a company.
func (r *PgxAccountRepository) DeleteAccountsByCompany(ctx context.Context, companyID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE company_id = $1;`, companyID)
	if err != nil {
		return classifyWriteError(err, "failed to delete accounts for company "+companyID)
	}
	return nil
}

// FindAccountByCode retrieves a company's account by its ledger code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID string, code string) (*domain.Account, error) {
	query := `
		SELECT account_id, company_id, code, name, account_type, balance, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE company_id = $1 AND code = $2;
	`
	var acc domain.Account
	err := r.pool.QueryRow(ctx, query, companyID, code).Scan(
		&acc.AccountID,
		&acc.CompanyID,
		&acc.Code,
		&acc.Name,
		&acc.AccountType,
		&acc.Balance,
		&acc.IsActive,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s for company %s: %w", code, companyID, err)
	}
	return &acc, nil
}

// ListAccountsByCompany retrieves all accounts scoped to a company.
func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, company_id, code, name, account_type, balance, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE company_id = $1
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.AccountID,
			&acc.CompanyID,
			&acc.Code,
			&acc.Name,
			&acc.AccountType,
			&acc.Balance,
			&acc.IsActive,
			&acc.CreatedAt,
			&acc.CreatedBy,
			&acc.LastUpdatedAt,
			&acc.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for company %s: %w", companyID, err)
	}
	return accounts, nil
}
