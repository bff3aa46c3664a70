package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	accountRepo  portsrepo.AccountReader
	shiftRepo    portsrepo.ShiftReader
}

// NewMovementService creates the service that reads movements and edits manual ones.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, accountRepo portsrepo.AccountReader, shiftRepo portsrepo.ShiftReader) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		shiftRepo:    shiftRepo,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	return s.movementRepo.FindMovementByID(ctx, movementID)
}

func (s *movementService) ListMovements(ctx context.Context, kind domain.LedgerKind, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	switch kind {
	case domain.LedgerBankAccount:
		if _, err := s.accountRepo.FindAccountByID(ctx, domain.KindBankAccount, accountID); err != nil {
			return nil, err
		}
	case domain.LedgerSafeBox:
		if _, err := s.accountRepo.FindAccountByID(ctx, domain.KindSafeBox, accountID); err != nil {
			return nil, err
		}
	case domain.LedgerShift:
		if _, err := s.shiftRepo.FindShiftByID(ctx, accountID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountKind, kind)
	}

	movements, nextToken, err := s.movementRepo.ListMovementsByAccount(ctx, kind, accountID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements",
			slog.String("ledger_kind", string(kind)),
			slog.String("account_id", accountID))
		return nil, err
	}
	return &dto.ListMovementsResponse{
		Movements: dto.ToListMovementResponse(movements),
		NextToken: nextToken,
	}, nil
}

// activeLedger resolves the ledger of a bank account or safe box and checks that it accepts movements.
func (s *movementService) activeLedger(ctx context.Context, kind domain.AccountKind, accountID string) (domain.LedgerKind, error) {
	ledger, ok := domain.LedgerKindFor(kind)
	if !ok {
		return "", ErrBalanceKindRequired
	}
	account, err := s.accountRepo.FindAccountByID(ctx, kind, accountID)
	if err != nil {
		return "", err
	}
	if !account.IsActive() {
		return "", fmt.Errorf("%w: %s", ErrAccountArchived, domain.AccountRef{Kind: kind, ID: accountID})
	}
	return ledger, nil
}

func (s *movementService) CreateManualMovement(ctx context.Context, req dto.CreateManualMovementRequest, userID string) (*domain.Movement, error) {
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	ledger, err := s.activeLedger(ctx, req.AccountType, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !ledger.AllowsMovementType(req.MovementType) {
		return nil, fmt.Errorf("%w: %s on %s", ErrMovementTypeInvalid, req.MovementType, ledger)
	}

	meta := MovementMeta{
		Reference:   req.Reference,
		Description: req.Description,
		SourceType:  domain.SourceManual,
		PerformedBy: userID,
	}
	if req.MovementDate != nil {
		meta.MovementDate = req.MovementDate.UTC()
	}
	movement := newMovement(ledger, req.AccountID, req.MovementType, req.Amount, meta, s.Now())

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to save manual movement", slog.String("account_id", req.AccountID))
		return nil, err
	}
	s.LogInfo(ctx, "Manual movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("ledger_kind", string(ledger)),
		slog.String("account_id", movement.AccountID),
		slog.String("user_id", userID))
	return &movement, nil
}

// findManual loads a movement and checks it may be edited through the given account type.
func (s *movementService) findManual(ctx context.Context, movementID string, kind domain.AccountKind, forbidden error) (*domain.Movement, error) {
	ledger, ok := domain.LedgerKindFor(kind)
	if !ok {
		return nil, ErrBalanceKindRequired
	}
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if !movement.IsManual() {
		return nil, fmt.Errorf("%w: movement %s has source %s", forbidden, movementID, movement.SourceType)
	}
	if movement.LedgerKind != ledger {
		return nil, fmt.Errorf("%w: movement %s belongs to %s", ErrMovementKindMismatch, movementID, movement.LedgerKind)
	}
	if _, err := s.activeLedger(ctx, kind, movement.AccountID); err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *movementService) UpdateManualMovement(ctx context.Context, movementID string, req dto.UpdateManualMovementRequest, userID string) (*domain.Movement, error) {
	movement, err := s.findManual(ctx, movementID, req.AccountType, ErrOnlyManualUpdate)
	if err != nil {
		return nil, err
	}

	if req.MovementType != nil {
		if !movement.LedgerKind.AllowsMovementType(*req.MovementType) {
			return nil, fmt.Errorf("%w: %s on %s", ErrMovementTypeInvalid, *req.MovementType, movement.LedgerKind)
		}
		movement.MovementType = *req.MovementType
	}
	if req.Amount != nil {
		if err := validatePositiveAmount(*req.Amount); err != nil {
			return nil, err
		}
		movement.Amount = *req.Amount
	}
	if req.Reference != nil {
		movement.Reference = *req.Reference
	}
	if req.Description != nil {
		movement.Description = *req.Description
	}
	if req.MovementDate != nil {
		movement.MovementDate = req.MovementDate.UTC()
	}
	movement.LastUpdatedAt = s.Now()
	movement.LastUpdatedBy = userID

	if err := s.movementRepo.UpdateMovement(ctx, *movement); err != nil {
		s.LogError(ctx, err, "Failed to update manual movement", slog.String("movement_id", movementID))
		return nil, err
	}
	return movement, nil
}

func (s *movementService) DeleteManualMovement(ctx context.Context, movementID string, kind domain.AccountKind, userID string) error {
	movement, err := s.findManual(ctx, movementID, kind, ErrOnlyManualDelete)
	if err != nil {
		return err
	}
	if err := s.movementRepo.DeleteMovement(ctx, movement.MovementID); err != nil {
		s.LogError(ctx, err, "Failed to delete manual movement", slog.String("movement_id", movementID))
		return err
	}
	s.LogInfo(ctx, "Manual movement deleted",
		slog.String("movement_id", movementID),
		slog.String("account_id", movement.AccountID),
		slog.String("amount", movement.Amount.String()),
		slog.String("user_id", userID))
	return nil
}
