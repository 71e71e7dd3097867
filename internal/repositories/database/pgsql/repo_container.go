package pgsql

import (
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CompanyRepo:    NewPgxCompanyRepository(pool),
		AccountRepo:    NewPgxAccountRepository(pool),
		JournalRepo:    NewPgxJournalRepository(pool),
		TaxProfileRepo: NewPgxTaxProfileRepository(pool),
		WorkflowRepo:   NewPgxWorkflowRepository(pool),
		ActivityRepo:   NewPgxActivityRepository(pool),
		UserRepo:       NewPgxUserRepository(pool),
	}
}
