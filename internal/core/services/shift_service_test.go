package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/core/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShiftServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  *MockAccountRepository
	movementRepo *MockMovementRepository
	shiftRepo    *MockShiftRepository
	salesLedger  *MockSalesLedger
	service      portssvc.ShiftSvcFacade
}

func (s *ShiftServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.accountRepo = new(MockAccountRepository)
	s.movementRepo = new(MockMovementRepository)
	s.shiftRepo = new(MockShiftRepository)
	s.salesLedger = new(MockSalesLedger)
	s.service = services.NewShiftService(s.accountRepo, s.shiftRepo, s.movementRepo, s.salesLedger,
		services.WithShiftCalculator(accounting.NewShiftCalculator("efectivo", []string{"credit_note"})))
}

func (s *ShiftServiceTestSuite) TearDownTest() {
	s.accountRepo.AssertExpectations(s.T())
	s.movementRepo.AssertExpectations(s.T())
	s.shiftRepo.AssertExpectations(s.T())
	s.salesLedger.AssertExpectations(s.T())
}

func TestShiftServiceSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}

func (s *ShiftServiceTestSuite) activeRegister(id string) *domain.CashRegister {
	return &domain.CashRegister{CashRegisterID: id, Name: "Caja 1", CurrencyCode: "ARS", IsActive: true}
}

func (s *ShiftServiceTestSuite) expectTx(commit bool) {
	s.movementRepo.On("Begin", s.ctx).Return(nil, nil).Once()
	if commit {
		s.movementRepo.On("Commit", s.ctx, mock.Anything).Return(nil).Once()
	}
	s.movementRepo.On("Rollback", s.ctx, mock.Anything).Return(nil).Maybe()
}

// expectScenarioLedger wires the sales and cash movements of a shift that opened with 300:
// two cash sales totalling 1000, one cash credit note of 50 and a cash_out of 100.
func (s *ShiftServiceTestSuite) expectScenarioLedger(shiftID string) {
	s.salesLedger.On("ListCompletedSalesByShift", s.ctx, shiftID).Return([]domain.Sale{
		{SaleID: "s1", ShiftID: shiftID, Total: dec("600"), VoucherType: "ticket",
			Payments: []domain.SalePayment{{MethodName: "efectivo", Amount: dec("600")}}},
		{SaleID: "s2", ShiftID: shiftID, Total: dec("400"), VoucherType: "ticket",
			Payments: []domain.SalePayment{{MethodName: "Efectivo", Amount: dec("400")}}},
		{SaleID: "s3", ShiftID: shiftID, Total: dec("50"), VoucherType: "credit_note",
			Payments: []domain.SalePayment{{MethodName: "efectivo", Amount: dec("50")}}},
	}, nil).Once()
	s.movementRepo.On("ListMovementsByAccounts", s.ctx, domain.LedgerShift, []string{shiftID}).Return([]domain.Movement{
		{LedgerKind: domain.LedgerShift, AccountID: shiftID, MovementType: domain.MovementCashOut, Amount: dec("100")},
	}, nil).Once()
}

func (s *ShiftServiceTestSuite) TestOpenShift() {
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.shiftRepo.On("SaveShift", s.ctx, mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.CashRegisterID == "reg-1" && sh.Status == domain.ShiftOpen && dec("300").Equal(sh.OpeningAmount)
	})).Return(nil).Once()

	shift, err := s.service.OpenShift(s.ctx, "reg-1", dto.OpenShiftRequest{OpeningAmount: dec("300")}, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(shift.ShiftID)
	s.Equal("user-1", shift.OpenedBy)
	s.True(shift.IsOpen())
}

func (s *ShiftServiceTestSuite) TestOpenShift_SecondOpenShiftRejected() {
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.shiftRepo.On("SaveShift", s.ctx, mock.Anything).
		Return(fmt.Errorf("%w: cash register reg-1 already has an open shift", apperrors.ErrDuplicate)).Once()

	_, err := s.service.OpenShift(s.ctx, "reg-1", dto.OpenShiftRequest{OpeningAmount: dec("0")}, "user-1")

	s.ErrorIs(err, services.ErrShiftAlreadyOpen)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "shift already open")
}

func (s *ShiftServiceTestSuite) TestOpenShift_InactiveRegister() {
	register := s.activeRegister("reg-1")
	register.IsActive = false
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(register, nil).Once()

	_, err := s.service.OpenShift(s.ctx, "reg-1", dto.OpenShiftRequest{}, "user-1")

	s.ErrorIs(err, services.ErrCashRegisterInactive)
}

func (s *ShiftServiceTestSuite) TestOpenShift_NegativeOpeningAmount() {
	_, err := s.service.OpenShift(s.ctx, "reg-1", dto.OpenShiftRequest{OpeningAmount: dec("-1")}, "user-1")
	s.ErrorIs(err, services.ErrAmountNegative)
}

func (s *ShiftServiceTestSuite) TestGetShiftSummary() {
	s.shiftRepo.On("FindShiftByID", s.ctx, "shift-1").Return(openShift("shift-1", "reg-1", 300), nil).Once()
	s.expectScenarioLedger("shift-1")

	summary, err := s.service.GetShiftSummary(s.ctx, "shift-1")

	s.Require().NoError(err)
	s.True(dec("1000").Equal(summary.GrossCollections))
	s.True(dec("50").Equal(summary.Refunds))
	s.True(dec("950").Equal(summary.NetCollections))
	s.True(dec("950").Equal(summary.CashFromSales))
	s.True(dec("100").Equal(summary.CashOut))
	s.True(dec("1150").Equal(summary.CurrentCashAmount), "got %s", summary.CurrentCashAmount)
}

func (s *ShiftServiceTestSuite) TestCloseShift_RecordsDiscrepancy() {
	s.expectTx(true)
	s.shiftRepo.On("LockShiftTx", s.ctx, mock.Anything, "shift-1", portsrepo.LockForUpdate).
		Return(openShift("shift-1", "reg-1", 300), nil).Once()
	s.expectScenarioLedger("shift-1")
	s.shiftRepo.On("CloseShiftTx", s.ctx, mock.Anything, mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.Status == domain.ShiftClosed &&
			sh.ExpectedAmount != nil && dec("1150").Equal(*sh.ExpectedAmount) &&
			sh.Discrepancy != nil && dec("-10").Equal(*sh.Discrepancy)
	})).Return(nil).Once()

	reason := "short change"
	closed, err := s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{
		CountedAmount:     dec("1140"),
		LeftInCash:        dec("300"),
		DiscrepancyReason: &reason,
	}, "user-2")

	s.Require().NoError(err)
	s.Equal(domain.ShiftClosed, closed.Status)
	s.True(dec("-10").Equal(*closed.Discrepancy))
	s.True(dec("300").Equal(*closed.LeftInCash))
	s.Equal("user-2", *closed.ClosedBy)
	s.Equal(&reason, closed.DiscrepancyReason)
	s.movementRepo.AssertNotCalled(s.T(), "SaveMovementTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ShiftServiceTestSuite) TestCloseShift_DepositsCountedCash() {
	s.accountRepo.On("FindAccountByID", s.ctx, domain.KindSafeBox, "safe-1").
		Return(activeAccount(domain.KindSafeBox, "safe-1", "ARS", 0), nil).Once()
	s.expectTx(true)
	s.shiftRepo.On("LockShiftTx", s.ctx, mock.Anything, "shift-1", portsrepo.LockForUpdate).
		Return(openShift("shift-1", "reg-1", 300), nil).Once()
	s.expectScenarioLedger("shift-1")
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.movementRepo.On("SaveMovementTx", s.ctx, mock.Anything, mock.MatchedBy(func(m domain.Movement) bool {
		return m.LedgerKind == domain.LedgerSafeBox &&
			m.AccountID == "safe-1" &&
			m.MovementType == domain.MovementDeposit &&
			m.SourceType == domain.SourceShiftDeposit &&
			m.SourceID != nil && *m.SourceID == "shift-1" &&
			dec("850").Equal(m.Amount)
	})).Return(nil).Once()
	s.shiftRepo.On("CloseShiftTx", s.ctx, mock.Anything, mock.Anything).Return(nil).Once()

	closed, err := s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{
		CountedAmount: dec("1150"),
		LeftInCash:    dec("300"),
		DepositTo:     &dto.AccountRefRequest{Type: domain.KindSafeBox, ID: "safe-1"},
	}, "user-2")

	s.Require().NoError(err)
	s.True(closed.Discrepancy.IsZero())
}

func (s *ShiftServiceTestSuite) TestCloseShift_TwiceFails() {
	closed := openShift("shift-1", "reg-1", 300)
	closed.Status = domain.ShiftClosed
	s.expectTx(false)
	s.shiftRepo.On("LockShiftTx", s.ctx, mock.Anything, "shift-1", portsrepo.LockForUpdate).Return(closed, nil).Once()

	_, err := s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{CountedAmount: dec("10")}, "user-1")

	s.ErrorIs(err, services.ErrShiftAlreadyClosed)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.shiftRepo.AssertNotCalled(s.T(), "CloseShiftTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ShiftServiceTestSuite) TestCloseShift_LeftInCashAboveCounted() {
	_, err := s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{
		CountedAmount: dec("100"), LeftInCash: dec("150"),
	}, "user-1")
	s.ErrorIs(err, services.ErrLeftInCashTooLarge)
}

func (s *ShiftServiceTestSuite) TestAddCash() {
	s.expectTx(true)
	s.shiftRepo.On("LockShiftTx", s.ctx, mock.Anything, "shift-1", portsrepo.LockForShare).
		Return(openShift("shift-1", "reg-1", 300), nil).Once()
	s.movementRepo.On("SaveMovementTx", s.ctx, mock.Anything, mock.MatchedBy(func(m domain.Movement) bool {
		return m.LedgerKind == domain.LedgerShift &&
			m.AccountID == "shift-1" &&
			m.MovementType == domain.MovementCashIn &&
			m.SourceType == domain.SourceShiftCash &&
			m.Description == "change float"
	})).Return(nil).Once()

	notes := "change float"
	movement, err := s.service.AddCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("20"), Notes: &notes}, "user-1")

	s.Require().NoError(err)
	s.True(dec("20").Equal(movement.Amount))
}

func (s *ShiftServiceTestSuite) TestRemoveCash_ClosedShift() {
	closed := openShift("shift-1", "reg-1", 300)
	closed.Status = domain.ShiftClosed
	s.expectTx(false)
	s.shiftRepo.On("LockShiftTx", s.ctx, mock.Anything, "shift-1", portsrepo.LockForShare).Return(closed, nil).Once()

	_, err := s.service.RemoveCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("20")}, "user-1")

	s.ErrorIs(err, services.ErrShiftNotOpen)
	s.movementRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *ShiftServiceTestSuite) TestRemoveCash_ZeroAmount() {
	_, err := s.service.RemoveCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("0")}, "user-1")
	s.ErrorIs(err, services.ErrAmountNotPositive)
}

func (s *ShiftServiceTestSuite) TestGetLastClosedShift_None() {
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.shiftRepo.On("FindLastClosedShiftByRegister", s.ctx, "reg-1").
		Return(nil, apperrors.NewNotFoundError("closed shift", "reg-1")).Once()

	shift, err := s.service.GetLastClosedShift(s.ctx, "reg-1")

	s.NoError(err)
	s.Nil(shift)
}

func (s *ShiftServiceTestSuite) TestGetLastClosedShift() {
	last := openShift("shift-0", "reg-1", 100)
	left := dec("300")
	last.Status = domain.ShiftClosed
	last.LeftInCash = &left
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.shiftRepo.On("FindLastClosedShiftByRegister", s.ctx, "reg-1").Return(last, nil).Once()

	shift, err := s.service.GetLastClosedShift(s.ctx, "reg-1")

	s.Require().NoError(err)
	s.True(left.Equal(*shift.LeftInCash))
}

func (s *ShiftServiceTestSuite) TestGetOpenShift_UnknownRegister() {
	s.shiftRepo.On("FindOpenShiftByRegister", s.ctx, "nope").
		Return(nil, apperrors.NewNotFoundError("open shift", "nope")).Once()
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "nope").
		Return(nil, apperrors.NewNotFoundError("cash register", "nope")).Once()

	_, err := s.service.GetOpenShift(s.ctx, "nope")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ShiftServiceTestSuite) TestListShifts() {
	s.accountRepo.On("FindCashRegisterByID", s.ctx, "reg-1").Return(s.activeRegister("reg-1"), nil).Once()
	s.shiftRepo.On("ListShiftsByRegister", s.ctx, "reg-1", 20, (*string)(nil)).
		Return([]domain.Shift{*openShift("shift-2", "reg-1", 0)}, nil, nil).Once()

	resp, err := s.service.ListShifts(s.ctx, "reg-1", dto.ListShiftsParams{Limit: 20})

	s.Require().NoError(err)
	s.Len(resp.Shifts, 1)
	s.Nil(resp.NextToken)
}

func (s *ShiftServiceTestSuite) TestOpenShift_OpeningAmountBeyondColumnScale() {
	_, err := s.service.OpenShift(s.ctx, "reg-1", dto.OpenShiftRequest{OpeningAmount: dec("0.00001")}, "user-1")
	s.ErrorIs(err, services.ErrAmountScale)
	s.shiftRepo.AssertNotCalled(s.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (s *ShiftServiceTestSuite) TestAddCash_AmountBeyondColumnScale() {
	_, err := s.service.AddCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("0.00004")}, "user-1")
	s.ErrorIs(err, services.ErrAmountScale)
	s.movementRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *ShiftServiceTestSuite) TestRemoveCash_AmountOutOfRange() {
	_, err := s.service.RemoveCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("-1000000000000000")}, "user-1")
	s.ErrorIs(err, services.ErrAmountNotPositive)

	_, err = s.service.RemoveCash(s.ctx, "shift-1", dto.ShiftCashRequest{Amount: dec("1000000000000000")}, "user-1")
	s.ErrorIs(err, services.ErrAmountOutOfRange)
}

func (s *ShiftServiceTestSuite) TestCloseShift_CountedAndLeftBeyondColumnScale() {
	_, err := s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{CountedAmount: dec("100.00005")}, "user-1")
	s.ErrorIs(err, services.ErrAmountScale)

	_, err = s.service.CloseShift(s.ctx, "shift-1", dto.CloseShiftRequest{
		CountedAmount: dec("100"), LeftInCash: dec("10.123456"),
	}, "user-1")
	s.ErrorIs(err, services.ErrAmountScale)
	s.shiftRepo.AssertNotCalled(s.T(), "LockShiftTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
