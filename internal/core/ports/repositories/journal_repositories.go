package repositories

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal by its ID.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves all lines of a journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal and its lines within one DB transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// DeleteJournalCascade removes a journal and its lines. Used by
	// onboarding compensation.
	DeleteJournalCascade(ctx context.Context, journalID string) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
