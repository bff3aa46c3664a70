package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// accountTables maps balance-holding kinds to their table. Values are constants, never user input.
var accountTables = map[domain.AccountKind]string{
	domain.KindBankAccount: "bank_accounts",
	domain.KindSafeBox:     "safe_boxes",
}

func tableFor(kind domain.AccountKind) (string, error) {
	table, ok := accountTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: account kind %q has no balance table", apperrors.ErrValidation, kind)
	}
	return table, nil
}

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for bank accounts, safe boxes and cash registers.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves the common columns of a bank account or safe box.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, kind domain.AccountKind, accountID string) (*domain.Account, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT account_id, name, currency_code, initial_balance, balance_date, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ` + table + `
		WHERE account_id = $1;
	`
	acc := domain.Account{Kind: kind}
	var status string
	err = r.Pool.QueryRow(ctx, query, accountID).Scan(
		&acc.AccountID,
		&acc.Name,
		&acc.CurrencyCode,
		&acc.InitialBalance,
		&acc.BalanceDate,
		&status,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(string(kind), accountID)
		}
		return nil, fmt.Errorf("failed to find %s %s: %w", kind, accountID, err)
	}
	acc.Status = domain.AccountStatus(status)
	return &acc, nil
}

// FindInitialBalances retrieves initial balances for many accounts in one query.
func (r *PgxAccountRepository) FindInitialBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error) {
	if len(accountIDs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT account_id, initial_balance FROM ` + table + ` WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query initial balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal, len(accountIDs))
	for rows.Next() {
		var id string
		var initial decimal.Decimal
		if err := rows.Scan(&id, &initial); err != nil {
			return nil, fmt.Errorf("failed to scan initial balance row: %w", err)
		}
		balances[id] = initial
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating initial balance rows: %w", err)
	}

	for _, id := range accountIDs {
		if _, ok := balances[id]; !ok {
			return nil, apperrors.NewNotFoundError(string(kind), id)
		}
	}
	return balances, nil
}

// UpdateAccountStatus sets the lifecycle status of a bank account or safe box.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, kind domain.AccountKind, accountID string, status domain.AccountStatus, userID string, updatedAt time.Time) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := `
		UPDATE ` + table + `
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, string(status), updatedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of %s %s: %w", kind, accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(string(kind), accountID)
	}
	return nil
}

const bankAccountColumns = `account_id, name, bank_name, account_number, currency_code, initial_balance, balance_date, status,
		       created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.BankName,
		&m.AccountNumber,
		&m.CurrencyCode,
		&m.InitialBalance,
		&m.BalanceDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBankAccount inserts a new bank account.
func (r *PgxAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.BankName,
		m.AccountNumber,
		m.CurrencyCode,
		m.InitialBalance,
		m.BalanceDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save bank account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1;`
	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank account", accountID)
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", accountID, err)
	}
	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// ListBankAccounts retrieves bank accounts ordered by name.
func (r *PgxAccountRepository) ListBankAccounts(ctx context.Context, includeArchived bool) ([]domain.BankAccount, error) {
	query := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts
		WHERE ($1 OR status = 'active')
		ORDER BY name, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	var result []models.BankAccount
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return mapping.ToDomainBankAccountSlice(result), nil
}

// UpdateBankAccount updates the descriptive fields of a bank account.
// Currency, initial balance and status are not changed here.
func (r *PgxAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		UPDATE bank_accounts
		SET name = $2, bank_name = $3, account_number = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.AccountID, m.Name, m.BankName, m.AccountNumber, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account", m.AccountID)
	}
	return nil
}

const safeBoxColumns = `account_id, name, location, currency_code, initial_balance, balance_date, status,
		       created_at, created_by, last_updated_at, last_updated_by`

func scanSafeBox(row pgx.Row) (models.SafeBox, error) {
	var m models.SafeBox
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Location,
		&m.CurrencyCode,
		&m.InitialBalance,
		&m.BalanceDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSafeBox inserts a new safe box.
func (r *PgxAccountRepository) SaveSafeBox(ctx context.Context, box domain.SafeBox) error {
	m := mapping.ToModelSafeBox(box)
	query := `
		INSERT INTO safe_boxes (` + safeBoxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Location,
		m.CurrencyCode,
		m.InitialBalance,
		m.BalanceDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: safe box with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save safe box %s: %w", m.AccountID, err)
	}
	return nil
}

// FindSafeBoxByID retrieves a safe box by its ID.
func (r *PgxAccountRepository) FindSafeBoxByID(ctx context.Context, accountID string) (*domain.SafeBox, error) {
	query := `SELECT ` + safeBoxColumns + ` FROM safe_boxes WHERE account_id = $1;`
	m, err := scanSafeBox(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("safe box", accountID)
		}
		return nil, fmt.Errorf("failed to find safe box %s: %w", accountID, err)
	}
	d := mapping.ToDomainSafeBox(m)
	return &d, nil
}

// ListSafeBoxes retrieves safe boxes ordered by name.
func (r *PgxAccountRepository) ListSafeBoxes(ctx context.Context, includeArchived bool) ([]domain.SafeBox, error) {
	query := `
		SELECT ` + safeBoxColumns + `
		FROM safe_boxes
		WHERE ($1 OR status = 'active')
		ORDER BY name, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query safe boxes: %w", err)
	}
	defer rows.Close()

	var result []models.SafeBox
	for rows.Next() {
		m, err := scanSafeBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safe box row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating safe box rows: %w", err)
	}
	return mapping.ToDomainSafeBoxSlice(result), nil
}

// UpdateSafeBox updates the descriptive fields of a safe box.
func (r *PgxAccountRepository) UpdateSafeBox(ctx context.Context, box domain.SafeBox) error {
	m := mapping.ToModelSafeBox(box)
	query := `
		UPDATE safe_boxes
		SET name = $2, location = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.AccountID, m.Name, m.Location, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update safe box %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("safe box", m.AccountID)
	}
	return nil
}

const cashRegisterColumns = `cash_register_id, name, currency_code, location, is_active,
		       created_at, created_by, last_updated_at, last_updated_by`

func scanCashRegister(row pgx.Row) (models.CashRegister, error) {
	var m models.CashRegister
	err := row.Scan(
		&m.CashRegisterID,
		&m.Name,
		&m.CurrencyCode,
		&m.Location,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCashRegister inserts a new cash register.
func (r *PgxAccountRepository) SaveCashRegister(ctx context.Context, register domain.CashRegister) error {
	m := mapping.ToModelCashRegister(register)
	query := `
		INSERT INTO cash_registers (` + cashRegisterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashRegisterID,
		m.Name,
		m.CurrencyCode,
		m.Location,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cash register with ID %s already exists", apperrors.ErrDuplicate, m.CashRegisterID)
		}
		return fmt.Errorf("failed to save cash register %s: %w", m.CashRegisterID, err)
	}
	return nil
}

// FindCashRegisterByID retrieves a cash register by its ID.
func (r *PgxAccountRepository) FindCashRegisterByID(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	query := `SELECT ` + cashRegisterColumns + ` FROM cash_registers WHERE cash_register_id = $1;`
	m, err := scanCashRegister(r.Pool.QueryRow(ctx, query, registerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("cash register", registerID)
		}
		return nil, fmt.Errorf("failed to find cash register %s: %w", registerID, err)
	}
	d := mapping.ToDomainCashRegister(m)
	return &d, nil
}

// ListCashRegisters retrieves all cash registers ordered by name.
func (r *PgxAccountRepository) ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error) {
	query := `SELECT ` + cashRegisterColumns + ` FROM cash_registers ORDER BY name, cash_register_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash registers: %w", err)
	}
	defer rows.Close()

	registers := []domain.CashRegister{}
	for rows.Next() {
		m, err := scanCashRegister(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash register row: %w", err)
		}
		registers = append(registers, mapping.ToDomainCashRegister(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash register rows: %w", err)
	}
	return registers, nil
}
