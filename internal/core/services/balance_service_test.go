package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  *MockAccountRepository
	movementRepo *MockMovementRepository
	shiftRepo    *MockShiftRepository
	salesLedger  *MockSalesLedger
	service      portssvc.BalanceSvc
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.accountRepo = new(MockAccountRepository)
	s.movementRepo = new(MockMovementRepository)
	s.shiftRepo = new(MockShiftRepository)
	s.salesLedger = new(MockSalesLedger)
	shiftSvc := services.NewShiftService(s.accountRepo, s.shiftRepo, s.movementRepo, s.salesLedger)
	s.service = services.NewBalanceService(s.accountRepo, s.movementRepo, shiftSvc)
}

func (s *BalanceServiceTestSuite) TearDownTest() {
	s.accountRepo.AssertExpectations(s.T())
	s.movementRepo.AssertExpectations(s.T())
	s.shiftRepo.AssertExpectations(s.T())
	s.salesLedger.AssertExpectations(s.T())
}

func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) TestGetBalance_BankAccountWithDeposit() {
	ids := []string{"bank-1"}
	s.accountRepo.On("FindInitialBalances", s.ctx, domain.KindBankAccount, ids).
		Return(map[string]decimal.Decimal{"bank-1": dec("1000")}, nil).Once()
	s.movementRepo.On("ListMovementsByAccounts", s.ctx, domain.LedgerBankAccount, ids).
		Return([]domain.Movement{
			{AccountID: "bank-1", MovementType: domain.MovementDeposit, Amount: dec("500")},
		}, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, domain.KindBankAccount, "bank-1")

	s.Require().NoError(err)
	s.True(dec("1500").Equal(balance), "got %s", balance)
}

func (s *BalanceServiceTestSuite) TestGetBalance_NoMovementsIsInitialBalance() {
	ids := []string{"safe-1"}
	s.accountRepo.On("FindInitialBalances", s.ctx, domain.KindSafeBox, ids).
		Return(map[string]decimal.Decimal{"safe-1": dec("250.75")}, nil).Once()
	s.movementRepo.On("ListMovementsByAccounts", s.ctx, domain.LedgerSafeBox, ids).
		Return([]domain.Movement{}, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, domain.KindSafeBox, "safe-1")

	s.Require().NoError(err)
	s.True(dec("250.75").Equal(balance))
}

func (s *BalanceServiceTestSuite) TestGetBalance_UnknownAccount() {
	s.accountRepo.On("FindInitialBalances", s.ctx, domain.KindBankAccount, []string{"missing"}).
		Return(nil, apperrors.NewNotFoundError("bank_account", "missing")).Once()

	_, err := s.service.GetBalance(s.ctx, domain.KindBankAccount, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BalanceServiceTestSuite) TestGetBalance_CashRegisterUsesOpenShift() {
	shift := openShift("shift-1", "reg-1", 300)
	s.shiftRepo.On("FindOpenShiftByRegister", s.ctx, "reg-1").Return(shift, nil).Once()
	s.shiftRepo.On("FindShiftByID", s.ctx, "shift-1").Return(shift, nil).Once()
	s.salesLedger.On("ListCompletedSalesByShift", s.ctx, "shift-1").Return([]domain.Sale{
		{SaleID: "s1", Total: dec("200"), VoucherType: "ticket", Payments: []domain.SalePayment{{MethodName: "efectivo", Amount: dec("200")}}},
	}, nil).Once()
	s.movementRepo.On("ListMovementsByAccounts", s.ctx, domain.LedgerShift, []string{"shift-1"}).
		Return([]domain.Movement{}, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, domain.KindCashRegister, "reg-1")

	s.Require().NoError(err)
	s.True(dec("500").Equal(balance))
}

func (s *BalanceServiceTestSuite) TestGetBalance_CashRegisterWithoutOpenShift() {
	s.shiftRepo.On("FindOpenShiftByRegister", s.ctx, "reg-1").
		Return(nil, apperrors.NewNotFoundError("open shift", "reg-1")).Once()
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").
		Return(&domain.CashRegister{CashRegisterID: "reg-1", IsActive: true}, nil).Once()

	_, err := s.service.GetBalance(s.ctx, domain.KindCashRegister, "reg-1")

	s.ErrorIs(err, services.ErrRegisterNoOpenShift)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "no open shift")
}

func (s *BalanceServiceTestSuite) TestGetBalance_InvalidKind() {
	_, err := s.service.GetBalance(s.ctx, domain.AccountKind("wallet"), "x")
	s.ErrorIs(err, services.ErrInvalidAccountKind)
}

func (s *BalanceServiceTestSuite) TestGetBalances_DeduplicatesAndFolds() {
	ids := []string{"safe-1", "safe-2"}
	s.accountRepo.On("FindInitialBalances", s.ctx, domain.KindSafeBox, ids).
		Return(map[string]decimal.Decimal{"safe-1": dec("1000"), "safe-2": dec("0")}, nil).Once()
	s.movementRepo.On("ListMovementsByAccounts", s.ctx, domain.LedgerSafeBox, ids).
		Return([]domain.Movement{
			{AccountID: "safe-1", MovementType: domain.MovementWithdrawal, Amount: dec("200")},
			{AccountID: "safe-2", MovementType: domain.MovementWithdrawal, Amount: dec("50")},
		}, nil).Once()

	balances, err := s.service.GetBalances(s.ctx, domain.KindSafeBox, []string{"safe-1", "safe-2", "safe-1", ""})

	s.Require().NoError(err)
	s.Len(balances, 2)
	s.True(dec("800").Equal(balances["safe-1"]))
	s.True(dec("-50").Equal(balances["safe-2"]), "overdraft is reported, not rejected")
}

func (s *BalanceServiceTestSuite) TestGetBalances_EmptyInput() {
	balances, err := s.service.GetBalances(s.ctx, domain.KindBankAccount, nil)
	s.Require().NoError(err)
	s.Empty(balances)
}

func (s *BalanceServiceTestSuite) TestGetBalances_RejectsCashRegisters() {
	_, err := s.service.GetBalances(s.ctx, domain.KindCashRegister, []string{"reg-1"})
	s.ErrorIs(err, services.ErrBalanceKindRequired)
	s.ErrorIs(err, apperrors.ErrValidation)
}
