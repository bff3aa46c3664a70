package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// MovementReaderSvc defines read operations for movements.
type MovementReaderSvc interface {
	GetMovement(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements pages through the movements of a bank account, safe box or shift.
	ListMovements(ctx context.Context, kind domain.LedgerKind, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
}

// ManualMovementSvc creates and edits movements entered by hand.
// Movements produced by transfers, shifts or sales cannot be edited here.
type ManualMovementSvc interface {
	CreateManualMovement(ctx context.Context, req dto.CreateManualMovementRequest, userID string) (*domain.Movement, error)
	UpdateManualMovement(ctx context.Context, movementID string, req dto.UpdateManualMovementRequest, userID string) (*domain.Movement, error)
	DeleteManualMovement(ctx context.Context, movementID string, kind domain.AccountKind, userID string) error
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	ManualMovementSvc
}
