package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest moves funds between two accounts of any kind.
type CreateTransferRequest struct {
	SourceType      domain.AccountKind `json:"sourceType" binding:"required,account_kind"`
	SourceID        string             `json:"sourceID" binding:"required"`
	DestinationType domain.AccountKind `json:"destinationType" binding:"required,account_kind"`
	DestinationID   string             `json:"destinationID" binding:"required"`
	Amount          decimal.Decimal    `json:"amount" binding:"required,gt=0"`
	Reference       *string            `json:"reference" binding:"omitempty,max=120"`
	Description     *string            `json:"description" binding:"omitempty,max=500"`
	Date            *time.Time         `json:"date"`
}

// TransferResponse defines the data returned for a completed transfer.
type TransferResponse struct {
	Reference   string            `json:"reference"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Source      domain.AccountRef `json:"source"`
	Destination domain.AccountRef `json:"destination"`
	Outbound    MovementResponse  `json:"outbound"`
	Inbound     MovementResponse  `json:"inbound"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		Reference:   t.Reference,
		Description: t.Description,
		Amount:      t.Amount,
		Source:      t.Source,
		Destination: t.Destination,
		Outbound:    ToMovementResponse(&t.Outbound),
		Inbound:     ToMovementResponse(&t.Inbound),
	}
}
