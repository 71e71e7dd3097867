package repositories

import (
	"context"
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// ActivityAppender defines the append-only audit log store.
type ActivityAppender interface {
	// AppendActivity persists one audit record. Callers treat failures as
	// non-fatal; the write is best-effort.
	AppendActivity(ctx context.Context, entry domain.ActivityLog) error
}

// ActivityReader defines read operations over the audit log.
type ActivityReader interface {
	// ListActivitiesByCompany retrieves up to limit audit records for a
	// company, newest first. A non-zero before time plus beforeID restricts
	// the result to records strictly older than that cursor position.
	ListActivitiesByCompany(ctx context.Context, companyID string, limit int, before time.Time, beforeID string) ([]domain.ActivityLog, error)
}

// ActivityRepositoryFacade combines all activity repository interfaces.
type ActivityRepositoryFacade interface {
	ActivityAppender
	ActivityReader
}
