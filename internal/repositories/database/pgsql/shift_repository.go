package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/SscSPs/treasury_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, cash_register_id, opened_by, opened_at, opening_amount, status,
		       closed_by, closed_at, expected_amount, counted_amount, left_in_cash, discrepancy,
		       discrepancy_reason, discrepancy_notes`

func scanShift(row pgx.Row) (models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.CashRegisterID,
		&m.OpenedBy,
		&m.OpenedAt,
		&m.OpeningAmount,
		&m.Status,
		&m.ClosedBy,
		&m.ClosedAt,
		&m.ExpectedAmount,
		&m.CountedAmount,
		&m.LeftInCash,
		&m.Discrepancy,
		&m.DiscrepancyReason,
		&m.DiscrepancyNotes,
	)
	return m, err
}

func (r *PgxShiftRepository) findOne(q pgx.Row, notFound error) (*domain.Shift, error) {
	m, err := scanShift(q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to scan shift: %w", err)
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

// SaveShift inserts a newly opened shift.
// The partial unique index on open shifts turns a concurrent second open into ErrDuplicate.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (shift_id, cash_register_id, opened_by, opened_at, opening_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ShiftID, m.CashRegisterID, m.OpenedBy, m.OpenedAt, m.OpeningAmount, m.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cash register %s already has an open shift", apperrors.ErrDuplicate, m.CashRegisterID)
		}
		return fmt.Errorf("failed to save shift %s: %w", m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	return r.findOne(r.Pool.QueryRow(ctx, query, shiftID), apperrors.NewNotFoundError("shift", shiftID))
}

// FindOpenShiftByRegister retrieves the open shift of a register.
func (r *PgxShiftRepository) FindOpenShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE cash_register_id = $1 AND status = 'open';`
	return r.findOne(r.Pool.QueryRow(ctx, query, registerID),
		fmt.Errorf("%w: no open shift for cash register %s", apperrors.ErrNotFound, registerID))
}

// FindLastClosedShiftByRegister retrieves the most recently closed shift of a register.
func (r *PgxShiftRepository) FindLastClosedShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE cash_register_id = $1 AND status = 'closed'
		ORDER BY closed_at DESC, shift_id DESC
		LIMIT 1;
	`
	return r.findOne(r.Pool.QueryRow(ctx, query, registerID),
		fmt.Errorf("%w: no closed shift for cash register %s", apperrors.ErrNotFound, registerID))
}

// ListShiftsByRegister retrieves a page of shifts for a register, newest first.
func (r *PgxShiftRepository) ListShiftsByRegister(ctx context.Context, registerID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	limit = pagination.ClampLimit(limit)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE cash_register_id = $1`
	args := []any{registerID}
	if nextToken != nil && *nextToken != "" {
		openedAt, shiftID, err := pagination.DecodeTimeIDToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (opened_at, shift_id) < ($2, $3)`
		args = append(args, openedAt, shiftID)
	}
	query += fmt.Sprintf(` ORDER BY opened_at DESC, shift_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query shifts of cash register %s: %w", registerID, err)
	}
	defer rows.Close()

	var result []models.Shift
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating shift rows: %w", err)
	}

	shifts := mapping.ToDomainShiftSlice(result)
	var next *string
	if len(shifts) > limit {
		shifts = shifts[:limit]
		last := shifts[limit-1]
		token := pagination.EncodeTimeIDToken(last.OpenedAt, last.ShiftID)
		next = &token
	}
	return shifts, next, nil
}

// LockShiftTx reads a shift holding the requested row lock until tx ends.
func (r *PgxShiftRepository) LockShiftTx(ctx context.Context, tx pgx.Tx, shiftID string, lock portsrepo.RowLock) (*domain.Shift, error) {
	if lock != portsrepo.LockForShare && lock != portsrepo.LockForUpdate {
		return nil, fmt.Errorf("%w: unsupported row lock %q", apperrors.ErrValidation, lock)
	}
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1 ` + string(lock) + `;`
	return r.findOne(tx.QueryRow(ctx, query, shiftID), apperrors.NewNotFoundError("shift", shiftID))
}

// CloseShiftTx writes the reconciliation figures of a shift that is still open.
func (r *PgxShiftRepository) CloseShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query := `
		UPDATE shifts
		SET status = 'closed', closed_by = $2, closed_at = $3, expected_amount = $4, counted_amount = $5,
		    left_in_cash = $6, discrepancy = $7, discrepancy_reason = $8, discrepancy_notes = $9
		WHERE shift_id = $1 AND status = 'open';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.ShiftID,
		m.ClosedBy,
		m.ClosedAt,
		m.ExpectedAmount,
		m.CountedAmount,
		m.LeftInCash,
		m.Discrepancy,
		m.DiscrepancyReason,
		m.DiscrepancyNotes,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close shift "+m.ShiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shift %s is not open", apperrors.ErrConflict, m.ShiftID)
	}
	return nil
}
