package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, kind domain.AccountKind, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, kind, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindInitialBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, kind, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, kind domain.AccountKind, accountID string, status domain.AccountStatus, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, kind, accountID, status, userID, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) ListBankAccounts(ctx context.Context, includeArchived bool) ([]domain.BankAccount, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindSafeBoxByID(ctx context.Context, accountID string) (*domain.SafeBox, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SafeBox), args.Error(1)
}

func (m *MockAccountRepository) ListSafeBoxes(ctx context.Context, includeArchived bool) ([]domain.SafeBox, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SafeBox), args.Error(1)
}

func (m *MockAccountRepository) SaveSafeBox(ctx context.Context, box domain.SafeBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateSafeBox(ctx context.Context, box domain.SafeBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockAccountRepository) FindCashRegisterByID(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockAccountRepository) ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRegister), args.Error(1)
}

func (m *MockAccountRepository) SaveCashRegister(ctx context.Context, register domain.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryWithTx = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMovementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByAccount(ctx context.Context, kind domain.LedgerKind, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, kind, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Movement), returnedNextToken, args.Error(2)
}

func (m *MockMovementRepository) ListMovementsByAccounts(ctx context.Context, kind domain.LedgerKind, accountIDs []string) ([]domain.Movement, error) {
	args := m.Called(ctx, kind, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByReference(ctx context.Context, reference string) ([]domain.Movement, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryFacade = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindLastClosedShiftByRegister(ctx context.Context, registerID string) (*domain.Shift, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByRegister(ctx context.Context, registerID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, registerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Shift), returnedNextToken, args.Error(2)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) LockShiftTx(ctx context.Context, tx pgx.Tx, shiftID string, lock portsrepo.RowLock) (*domain.Shift, error) {
	args := m.Called(ctx, tx, shiftID, lock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) CloseShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	args := m.Called(ctx, tx, shift)
	return args.Error(0)
}

// --- Mock SalesLedger ---
type MockSalesLedger struct {
	mock.Mock
}

var _ portsrepo.SalesLedgerReader = (*MockSalesLedger)(nil)

func (m *MockSalesLedger) ListCompletedSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- helpers ---

func activeAccount(kind domain.AccountKind, id, currency string, initial int64) *domain.Account {
	return &domain.Account{
		AccountID:      id,
		Kind:           kind,
		Name:           id,
		CurrencyCode:   currency,
		InitialBalance: decimal.NewFromInt(initial),
		Status:         domain.StatusActive,
	}
}

func openShift(id, registerID string, opening int64) *domain.Shift {
	return &domain.Shift{
		ShiftID:        id,
		CashRegisterID: registerID,
		OpenedBy:       "user-1",
		OpenedAt:       time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		OpeningAmount:  decimal.NewFromInt(opening),
		Status:         domain.ShiftOpen,
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
