package pgsql

import (
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		MovementRepo: newPgxMovementRepository(dbPool),
		ShiftRepo:    newPgxShiftRepository(dbPool),
		SalesLedger:  newPgxSalesLedgerRepository(dbPool),
	}
}
