package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MovementReader defines read operations for movements.
type MovementReader interface {
	// FindMovementByID retrieves a movement by its id.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovementsByAccount retrieves a page of movements of one account or shift, newest first.
	// It returns the movements, a token for the next page, and an error.
	ListMovementsByAccount(ctx context.Context, kind domain.LedgerKind, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error)

	// ListMovementsByAccounts retrieves every movement of the given accounts in one query.
	ListMovementsByAccounts(ctx context.Context, kind domain.LedgerKind, accountIDs []string) ([]domain.Movement, error)

	// ListMovementsByReference retrieves the movements sharing a reference, such as both legs of a transfer.
	ListMovementsByReference(ctx context.Context, reference string) ([]domain.Movement, error)
}

// MovementWriter defines single-statement write operations for movements.
type MovementWriter interface {
	SaveMovement(ctx context.Context, movement domain.Movement) error
	UpdateMovement(ctx context.Context, movement domain.Movement) error
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementTxWriter writes movements inside a caller-owned transaction.
type MovementTxWriter interface {
	SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
	MovementTxWriter
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
