package pgsql

import (
	"errors"
	"fmt"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyWriteError converts a store error into the application taxonomy:
// unique violations become ErrConflict, foreign key violations become
// ErrDependency, anything else is ErrTransient. Callers get a tagged error
// to branch on instead of inspecting message text.
func classifyWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, msg)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", apperrors.ErrDependency, msg)
		}
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrTransient, msg, err)
}
