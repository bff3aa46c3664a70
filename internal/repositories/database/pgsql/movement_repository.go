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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryWithTx
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, ledger_kind, account_id, movement_type, amount, reference, description,
		       source_type, source_id, performed_by, movement_date,
		       created_at, created_by, last_updated_at, last_updated_by`

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.LedgerKind,
		&m.AccountID,
		&m.MovementType,
		&m.Amount,
		&m.Reference,
		&m.Description,
		&m.SourceType,
		&m.SourceID,
		&m.PerformedBy,
		&m.MovementDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectMovements(rows pgx.Rows) ([]domain.Movement, error) {
	defer rows.Close()
	var result []models.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return mapping.ToDomainMovementSlice(result), nil
}

func insertMovement(ctx context.Context, db execer, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := db.Exec(ctx, query,
		m.MovementID,
		m.LedgerKind,
		m.AccountID,
		m.MovementType,
		m.Amount,
		m.Reference,
		m.Description,
		m.SourceType,
		m.SourceID,
		m.PerformedBy,
		m.MovementDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: movement with ID %s already exists", apperrors.ErrDuplicate, m.MovementID)
		}
		return apperrors.NewAppError(500, "failed to insert movement "+m.MovementID, err)
	}
	return nil
}

// SaveMovement inserts a single movement.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	return insertMovement(ctx, r.Pool, movement)
}

// SaveMovementTx inserts a movement inside the caller's transaction.
func (r *PgxMovementRepository) SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	return insertMovement(ctx, tx, movement)
}

// FindMovementByID retrieves a movement by its ID.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("movement", movementID)
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	d := mapping.ToDomainMovement(m)
	return &d, nil
}

// ListMovementsByAccount retrieves a page of movements for one account, newest first.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, kind domain.LedgerKind, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	limit = pagination.ClampLimit(limit)

	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE ledger_kind = $1 AND account_id = $2
	`
	args := []any{string(kind), accountID}
	if nextToken != nil && *nextToken != "" {
		movementDate, createdAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (movement_date, created_at, movement_id) < ($3, $4, $5)`
		args = append(args, movementDate, createdAt, movementID)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY movement_date DESC, created_at DESC, movement_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query movements of %s %s: %w", kind, accountID, err)
	}
	movements, err := collectMovements(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[limit-1]
		token := pagination.EncodeToken(last.MovementDate, last.CreatedAt, last.MovementID)
		next = &token
	}
	return movements, next, nil
}

// ListMovementsByAccounts retrieves all movements of many accounts of one ledger kind.
func (r *PgxMovementRepository) ListMovementsByAccounts(ctx context.Context, kind domain.LedgerKind, accountIDs []string) ([]domain.Movement, error) {
	if len(accountIDs) == 0 {
		return []domain.Movement{}, nil
	}
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE ledger_kind = $1 AND account_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements by accounts: %w", err)
	}
	return collectMovements(rows)
}

// ListMovementsByReference retrieves the movements sharing a reference.
func (r *PgxMovementRepository) ListMovementsByReference(ctx context.Context, reference string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE reference = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements by reference %s: %w", reference, err)
	}
	return collectMovements(rows)
}

// UpdateMovement updates a manual movement. Rows with another source type are never touched.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)
	query := `
		UPDATE movements
		SET movement_type = $2, amount = $3, reference = $4, description = $5, movement_date = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE movement_id = $1 AND source_type = 'manual';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MovementID,
		m.MovementType,
		m.Amount,
		m.Reference,
		m.Description,
		m.MovementDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update movement %s: %w", m.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("manual movement", m.MovementID)
	}
	return nil
}

// DeleteMovement deletes a manual movement. Rows with another source type are never touched.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM movements WHERE movement_id = $1 AND source_type = 'manual';`, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("manual movement", movementID)
	}
	return nil
}
