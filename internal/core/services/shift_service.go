package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

type shiftService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	shiftRepo    portsrepo.ShiftRepositoryFacade
	movementRepo portsrepo.MovementRepositoryWithTx
	salesLedger  portsrepo.SalesLedgerReader
	calculator   accounting.ShiftCalculator
	resolver     ledgerResolver
}

// ShiftServiceOption is a functional option for configuring the shift service
type ShiftServiceOption func(*shiftService)

// WithShiftCalculator overrides the cash payment method and credit-note voucher types used in summaries.
func WithShiftCalculator(calculator accounting.ShiftCalculator) ShiftServiceOption {
	return func(s *shiftService) {
		s.calculator = calculator
	}
}

// NewShiftService creates the service owning the cash-register shift lifecycle.
func NewShiftService(
	accountRepo portsrepo.AccountRepositoryFacade,
	shiftRepo portsrepo.ShiftRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryWithTx,
	salesLedger portsrepo.SalesLedgerReader,
	options ...ShiftServiceOption,
) portssvc.ShiftSvcFacade {
	svc := &shiftService{
		accountRepo:  accountRepo,
		shiftRepo:    shiftRepo,
		movementRepo: movementRepo,
		salesLedger:  salesLedger,
		calculator:   accounting.NewShiftCalculator("", nil),
	}
	for _, option := range options {
		option(svc)
	}
	svc.resolver = ledgerResolver{
		accounts:   accountRepo,
		openShifts: svc,
		shifts:     shiftRepo,
		movements:  movementRepo,
	}
	return svc
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

func (s *shiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return s.shiftRepo.FindShiftByID(ctx, shiftID)
}

func (s *shiftService) GetOpenShift(ctx context.Context, registerID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindOpenShiftByRegister(ctx, registerID)
	if err == nil {
		return shift, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	// Distinguish an unknown register from one that is simply closed.
	if _, err := s.accountRepo.FindCashRegisterByID(ctx, registerID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrRegisterNoOpenShift, registerID)
}

func (s *shiftService) GetLastClosedShift(ctx context.Context, registerID string) (*domain.Shift, error) {
	if _, err := s.accountRepo.FindCashRegisterByID(ctx, registerID); err != nil {
		return nil, err
	}
	shift, err := s.shiftRepo.FindLastClosedShiftByRegister(ctx, registerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) ListShifts(ctx context.Context, registerID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	if _, err := s.accountRepo.FindCashRegisterByID(ctx, registerID); err != nil {
		return nil, err
	}
	shifts, nextToken, err := s.shiftRepo.ListShiftsByRegister(ctx, registerID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts", slog.String("cash_register_id", registerID))
		return nil, err
	}
	resp := &dto.ListShiftsResponse{Shifts: make([]dto.ShiftResponse, len(shifts)), NextToken: nextToken}
	for i := range shifts {
		resp.Shifts[i] = dto.ToShiftResponse(&shifts[i])
	}
	return resp, nil
}

func (s *shiftService) GetShiftSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, *shift)
}

func (s *shiftService) summarize(ctx context.Context, shift domain.Shift) (*domain.ShiftSummary, error) {
	sales, err := s.salesLedger.ListCompletedSalesByShift(ctx, shift.ShiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read sales for shift", slog.String("shift_id", shift.ShiftID))
		return nil, err
	}
	movements, err := s.movementRepo.ListMovementsByAccounts(ctx, domain.LedgerShift, []string{shift.ShiftID})
	if err != nil {
		s.LogError(ctx, err, "Failed to read shift movements", slog.String("shift_id", shift.ShiftID))
		return nil, err
	}
	summary := s.calculator.Summarize(shift, sales, movements)
	return &summary, nil
}

func (s *shiftService) OpenShift(ctx context.Context, registerID string, req dto.OpenShiftRequest, userID string) (*domain.Shift, error) {
	if err := validateNonNegativeAmount(req.OpeningAmount); err != nil {
		return nil, err
	}
	register, err := s.accountRepo.FindCashRegisterByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if !register.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrCashRegisterInactive, registerID)
	}

	shift := domain.Shift{
		ShiftID:        uuid.NewString(),
		CashRegisterID: registerID,
		OpenedBy:       userID,
		OpenedAt:       s.Now(),
		OpeningAmount:  req.OpeningAmount,
		Status:         domain.ShiftOpen,
	}
	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: cash register %s", ErrShiftAlreadyOpen, registerID)
		}
		s.LogError(ctx, err, "Failed to open shift", slog.String("cash_register_id", registerID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift opened",
		slog.String("shift_id", shift.ShiftID),
		slog.String("cash_register_id", registerID),
		slog.String("opening_amount", shift.OpeningAmount.String()),
		slog.String("user_id", userID))
	return &shift, nil
}

func (s *shiftService) AddCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error) {
	return s.recordCash(ctx, shiftID, domain.MovementCashIn, req, userID)
}

func (s *shiftService) RemoveCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error) {
	return s.recordCash(ctx, shiftID, domain.MovementCashOut, req, userID)
}

func (s *shiftService) recordCash(ctx context.Context, shiftID string, movementType domain.MovementType, req dto.ShiftCashRequest, userID string) (*domain.Movement, error) {
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	meta := MovementMeta{
		SourceType:  domain.SourceShiftCash,
		SourceID:    &shiftID,
		PerformedBy: userID,
	}
	if req.Notes != nil {
		meta.Description = *req.Notes
	}

	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = s.movementRepo.Rollback(ctx, tx) }()

	movement, err := recordShiftCash(ctx, tx, s.shiftRepo, s.movementRepo, shiftID, movementType, req.Amount, meta)
	if err != nil {
		return nil, err
	}
	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit shift cash movement", slog.String("shift_id", shiftID))
		return nil, apperrors.NewAppError(500, "failed to commit cash movement", err)
	}

	s.LogInfo(ctx, "Shift cash recorded",
		slog.String("shift_id", shiftID),
		slog.String("movement_type", string(movementType)),
		slog.String("amount", req.Amount.String()),
		slog.String("user_id", userID))
	return movement, nil
}

func (s *shiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error) {
	if err := validateNonNegativeAmount(req.CountedAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegativeAmount(req.LeftInCash); err != nil {
		return nil, err
	}
	if req.LeftInCash.GreaterThan(req.CountedAmount) {
		return nil, ErrLeftInCashTooLarge
	}

	closing := domain.ShiftClosing{
		CountedAmount:     req.CountedAmount,
		LeftInCash:        req.LeftInCash,
		DiscrepancyReason: req.DiscrepancyReason,
		DiscrepancyNotes:  req.DiscrepancyNotes,
	}
	var deposit LedgerAccount
	depositAmount := req.CountedAmount.Sub(req.LeftInCash)
	if req.DepositTo != nil && depositAmount.IsPositive() {
		ref := domain.AccountRef{Kind: req.DepositTo.Type, ID: req.DepositTo.ID}
		if !ref.Kind.HoldsBalance() {
			return nil, ErrBalanceKindRequired
		}
		closing.DepositTo = &ref
		resolved, err := s.resolver.resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		deposit = resolved
	}

	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = s.movementRepo.Rollback(ctx, tx) }()

	shift, err := s.shiftRepo.LockShiftTx(ctx, tx, shiftID, portsrepo.LockForUpdate)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: %s", ErrShiftAlreadyClosed, shiftID)
	}

	// Cash writers hold FOR SHARE on this row, so every committed movement is visible here.
	summary, err := s.summarize(ctx, *shift)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	shift.Close(closing, summary.CurrentCashAmount, userID, now)

	if deposit != nil {
		register, err := s.accountRepo.FindCashRegisterByID(ctx, shift.CashRegisterID)
		if err != nil {
			return nil, err
		}
		if register.CurrencyCode != deposit.CurrencyCode() {
			return nil, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, register.CurrencyCode, deposit.CurrencyCode())
		}
		_, err = deposit.RecordInbound(ctx, tx, depositAmount, MovementMeta{
			Reference:    "SHIFT-" + shiftID,
			Description:  "Cash deposited at shift close",
			SourceType:   domain.SourceShiftDeposit,
			SourceID:     &shift.ShiftID,
			PerformedBy:  userID,
			MovementDate: now,
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to record shift close deposit", slog.String("shift_id", shiftID))
			return nil, err
		}
	}

	if err := s.shiftRepo.CloseShiftTx(ctx, tx, *shift); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrShiftAlreadyClosed, shiftID)
		}
		s.LogError(ctx, err, "Failed to close shift", slog.String("shift_id", shiftID))
		return nil, err
	}
	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit shift close", slog.String("shift_id", shiftID))
		return nil, apperrors.NewAppError(500, "failed to commit shift close", err)
	}

	logArgs := []any{
		slog.String("shift_id", shiftID),
		slog.String("expected_amount", summary.CurrentCashAmount.String()),
		slog.String("counted_amount", req.CountedAmount.String()),
		slog.String("discrepancy", shift.Discrepancy.String()),
		slog.String("user_id", userID),
	}
	if !shift.Discrepancy.IsZero() {
		s.GetLogger(ctx).Warn("Shift closed with discrepancy", logArgs...)
	} else {
		s.LogInfo(ctx, "Shift closed", logArgs...)
	}
	return shift, nil
}
