package handlers_test

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/posthog/posthog-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) ListBankAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.BankAccount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockAccountService) CreateSafeBox(ctx context.Context, req dto.CreateSafeBoxRequest, userID string) (*domain.SafeBox, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SafeBox), args.Error(1)
}
func (m *MockAccountService) GetSafeBox(ctx context.Context, accountID string) (*domain.SafeBox, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SafeBox), args.Error(1)
}
func (m *MockAccountService) ListSafeBoxes(ctx context.Context, params dto.ListAccountsParams) ([]domain.SafeBox, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SafeBox), args.Error(1)
}
func (m *MockAccountService) UpdateSafeBox(ctx context.Context, accountID string, req dto.UpdateSafeBoxRequest, userID string) (*domain.SafeBox, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SafeBox), args.Error(1)
}
func (m *MockAccountService) ArchiveAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error {
	return m.Called(ctx, kind, accountID, userID).Error(0)
}
func (m *MockAccountService) RestoreAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error {
	return m.Called(ctx, kind, accountID, userID).Error(0)
}
func (m *MockAccountService) CreateCashRegister(ctx context.Context, req dto.CreateCashRegisterRequest, userID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}
func (m *MockAccountService) GetCashRegister(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}
func (m *MockAccountService) ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRegister), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(ctx context.Context, kind domain.AccountKind, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, kind, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockBalanceService) GetBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, kind, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}
func (m *MockTransferService) ListTransferMovements(ctx context.Context, reference string) ([]domain.Movement, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

var _ portssvc.TransferSvc = (*MockTransferService)(nil)

// --- Mock MovementService ---
type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) ListMovements(ctx context.Context, kind domain.LedgerKind, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	args := m.Called(ctx, kind, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListMovementsResponse), args.Error(1)
}
func (m *MockMovementService) CreateManualMovement(ctx context.Context, req dto.CreateManualMovementRequest, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) UpdateManualMovement(ctx context.Context, movementID string, req dto.UpdateManualMovementRequest, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) DeleteManualMovement(ctx context.Context, movementID string, kind domain.AccountKind, userID string) error {
	return m.Called(ctx, movementID, kind, userID).Error(0)
}

var _ portssvc.MovementSvcFacade = (*MockMovementService)(nil)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) shift(args mock.Arguments) (*domain.Shift, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return m.shift(m.Called(ctx, shiftID))
}
func (m *MockShiftService) GetOpenShift(ctx context.Context, registerID string) (*domain.Shift, error) {
	return m.shift(m.Called(ctx, registerID))
}
func (m *MockShiftService) GetLastClosedShift(ctx context.Context, registerID string) (*domain.Shift, error) {
	return m.shift(m.Called(ctx, registerID))
}
func (m *MockShiftService) ListShifts(ctx context.Context, registerID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	args := m.Called(ctx, registerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListShiftsResponse), args.Error(1)
}
func (m *MockShiftService) GetShiftSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftSummary), args.Error(1)
}
func (m *MockShiftService) OpenShift(ctx context.Context, registerID string, req dto.OpenShiftRequest, userID string) (*domain.Shift, error) {
	return m.shift(m.Called(ctx, registerID, req, userID))
}
func (m *MockShiftService) AddCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, shiftID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockShiftService) RemoveCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, shiftID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error) {
	return m.shift(m.Called(ctx, shiftID, req, userID))
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

// recordingPosthog captures events instead of sending them.
type recordingPosthog struct {
	posthog.Client
	events []posthog.Capture
}

func (r *recordingPosthog) Enqueue(msg posthog.Message) error {
	if c, ok := msg.(posthog.Capture); ok {
		r.events = append(r.events, c)
	}
	return nil
}

func (r *recordingPosthog) Close() error { return nil }

func (r *recordingPosthog) eventNames() []string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.Event
	}
	return names
}
