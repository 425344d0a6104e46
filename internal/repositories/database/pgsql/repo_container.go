package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		GroupRepo:     newPgxGroupRepository(dbPool),
		AccountRepo:   newPgxAccountRepository(dbPool),
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		RecordRepo:    newPgxRecordRepository(dbPool),
		TransferRepo:  newPgxTransferRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
