package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// TransferSvc moves funds between any two accounts.
type TransferSvc interface {
	// CreateTransfer writes the outbound and inbound movements atomically.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error)

	// ListTransferMovements returns the movements written under a transfer reference.
	ListTransferMovements(ctx context.Context, reference string) ([]domain.Movement, error)
}
