package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ShiftReader defines read operations for shifts.
type ShiftReader interface {
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShiftByRegister returns ErrNotFound when the register has no open shift.
	FindOpenShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error)

	// FindLastClosedShiftByRegister returns the most recently closed shift, or ErrNotFound.
	FindLastClosedShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error)

	// ListShiftsByRegister retrieves a page of shifts, newest first.
	ListShiftsByRegister(ctx context.Context, registerID string, limit int, nextToken *string) ([]domain.Shift, *string, error)
}

// ShiftWriter defines write operations for shifts.
type ShiftWriter interface {
	// SaveShift inserts an open shift. It returns ErrDuplicate when the register already has one.
	SaveShift(ctx context.Context, shift domain.Shift) error
}

// ShiftTxWriter defines locking operations that run inside a caller-owned transaction.
type ShiftTxWriter interface {
	// LockShiftTx reads the shift row with the given row lock held until the transaction ends.
	LockShiftTx(ctx context.Context, tx pgx.Tx, shiftID string, lock RowLock) (*domain.Shift, error)

	// CloseShiftTx persists the reconciliation figures of a shift that is still open.
	// It returns ErrConflict when the row is no longer open.
	CloseShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
	ShiftTxWriter
}
