package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RowLock selects the row-level lock taken by a locking read inside a transaction.
type RowLock string

const (
	// LockForShare blocks concurrent FOR UPDATE lockers but not other sharers.
	LockForShare RowLock = "FOR SHARE"
	// LockForUpdate is exclusive.
	LockForUpdate RowLock = "FOR UPDATE"
)
