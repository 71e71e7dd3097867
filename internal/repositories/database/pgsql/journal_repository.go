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

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for journal and line data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

// SaveJournal saves a journal and its lines within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrTransient, err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	journalQuery := `
		INSERT INTO journals (journal_id, company_id, journal_date, description, source, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.CompanyID,
		journal.JournalDate,
		journal.Description,
		journal.Source,
		journal.Status,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		return classifyWriteError(err, "failed to insert journal "+journal.JournalID)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_id, account_id, amount, line_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.JournalID,
			line.AccountID,
			line.Amount,
			line.LineType,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyWriteError(err, "failed to insert lines for journal "+journal.JournalID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit journal %s: %w", apperrors.ErrTransient, journal.JournalID, err)
	}
	return nil
}

// DeleteJournalCascade removes a journal and its lines in one transaction.
func (r *PgxJournalRepository) DeleteJournalCascade(ctx context.Context, journalID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrTransient, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, journalID); err != nil {
		return classifyWriteError(err, "failed to delete lines of journal "+journalID)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID); err != nil {
		return classifyWriteError(err, "failed to delete journal "+journalID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit delete of journal %s: %w", apperrors.ErrTransient, journalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, company_id, journal_date, description, source, status, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var j domain.Journal
	err := r.pool.QueryRow(ctx, query, journalID).Scan(
		&j.JournalID,
		&j.CompanyID,
		&j.JournalDate,
		&j.Description,
		&j.Source,
		&j.Status,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return &j, nil
}

// FindLinesByJournalID retrieves all lines of a journal.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, amount, line_type, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE journal_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lines of journal %s: %w", journalID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.JournalID,
			&line.AccountID,
			&line.Amount,
			&line.LineType,
			&line.CreatedAt,
			&line.CreatedBy,
			&line.LastUpdatedAt,
			&line.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows of journal %s: %w", journalID, err)
	}
	return lines, nil
}
