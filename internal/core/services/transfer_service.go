package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/google/uuid"
)

type transferService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryWithTx
	resolver     ledgerResolver
}

// NewTransferService creates a new transfer service. Cash registers take part in
// transfers through the open shift returned by shiftSvc.
func NewTransferService(
	accountRepo portsrepo.AccountRepositoryFacade,
	shiftRepo portsrepo.ShiftTxWriter,
	movementRepo portsrepo.MovementRepositoryWithTx,
	shiftSvc portssvc.ShiftReaderSvc,
) portssvc.TransferSvc {
	return &transferService{
		movementRepo: movementRepo,
		resolver: ledgerResolver{
			accounts:   accountRepo,
			openShifts: shiftSvc,
			shifts:     shiftRepo,
			movements:  movementRepo,
		},
	}
}

var _ portssvc.TransferSvc = (*transferService)(nil)

func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	source := domain.AccountRef{Kind: req.SourceType, ID: req.SourceID}
	destination := domain.AccountRef{Kind: req.DestinationType, ID: req.DestinationID}
	if !source.Kind.IsValid() || !destination.Kind.IsValid() {
		return nil, ErrInvalidAccountKind
	}
	if source == destination {
		return nil, ErrSameAccount
	}

	from, err := s.resolver.resolve(ctx, source)
	if err != nil {
		return nil, err
	}
	to, err := s.resolver.resolve(ctx, destination)
	if err != nil {
		return nil, err
	}
	if from.CurrencyCode() != to.CurrencyCode() {
		return nil, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, from.CurrencyCode(), to.CurrencyCode())
	}

	now := s.Now()
	reference := "TRF-" + uuid.NewString()
	if req.Reference != nil && *req.Reference != "" {
		reference = *req.Reference
	}
	description := fmt.Sprintf("Transfer from %s to %s", source, destination)
	if req.Description != nil && *req.Description != "" {
		description = *req.Description
	}
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}
	meta := MovementMeta{
		Reference:    reference,
		Description:  description,
		SourceType:   domain.SourceTransfer,
		SourceID:     &reference,
		PerformedBy:  userID,
		MovementDate: date,
	}

	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transfer transaction")
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = s.movementRepo.Rollback(ctx, tx) }()

	outbound, err := from.RecordOutbound(ctx, tx, req.Amount, meta)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transfer outbound leg", slog.String("source", source.String()))
		return nil, err
	}
	inbound, err := to.RecordInbound(ctx, tx, req.Amount, meta)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transfer inbound leg", slog.String("destination", destination.String()))
		return nil, err
	}
	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transfer", slog.String("reference", reference))
		return nil, apperrors.NewAppError(500, "failed to commit transfer", err)
	}

	s.LogInfo(ctx, "Transfer created",
		slog.String("reference", reference),
		slog.String("source", source.String()),
		slog.String("destination", destination.String()),
		slog.String("amount", req.Amount.String()),
		slog.String("user_id", userID))

	return &domain.Transfer{
		Reference:   reference,
		Description: description,
		Amount:      req.Amount,
		Source:      source,
		Destination: destination,
		Outbound:    *outbound,
		Inbound:     *inbound,
	}, nil
}

func (s *transferService) ListTransferMovements(ctx context.Context, reference string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListMovementsByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	legs := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		if m.SourceType == domain.SourceTransfer {
			legs = append(legs, m)
		}
	}
	if len(legs) == 0 {
		return nil, apperrors.NewNotFoundError("transfer", reference)
	}
	return legs, nil
}
