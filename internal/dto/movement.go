package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateManualMovementRequest defines a manual bank or safe movement.
type CreateManualMovementRequest struct {
	AccountType  domain.AccountKind  `json:"accountType" binding:"required,account_kind"`
	AccountID    string              `json:"accountID" binding:"required"`
	MovementType domain.MovementType `json:"movementType" binding:"required,oneof=deposit withdrawal transfer_in transfer_out"`
	Amount       decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Reference    string              `json:"reference" binding:"max=120"`
	Description  string              `json:"description" binding:"max=500"`
	MovementDate *time.Time          `json:"movementDate"` // Optional, defaults to now
}

// UpdateManualMovementRequest defines a patch to a manual movement. Nil fields are left unchanged.
type UpdateManualMovementRequest struct {
	AccountType  domain.AccountKind   `json:"accountType" binding:"required,account_kind"`
	MovementType *domain.MovementType `json:"movementType" binding:"omitempty,oneof=deposit withdrawal transfer_in transfer_out"`
	Amount       *decimal.Decimal     `json:"amount" binding:"omitempty,gt=0"`
	Reference    *string              `json:"reference" binding:"omitempty,max=120"`
	Description  *string              `json:"description" binding:"omitempty,max=500"`
	MovementDate *time.Time           `json:"movementDate"`
}

// DeleteManualMovementParams carries the account type a deletion is scoped to.
type DeleteManualMovementParams struct {
	AccountType domain.AccountKind `form:"accountType" binding:"required,account_kind"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID   string              `json:"movementID"`
	LedgerKind   domain.LedgerKind   `json:"ledgerKind"`
	AccountID    string              `json:"accountID"`
	MovementType domain.MovementType `json:"movementType"`
	Amount       decimal.Decimal     `json:"amount"`
	Reference    string              `json:"reference"`
	Description  string              `json:"description"`
	SourceType   domain.SourceType   `json:"sourceType"`
	SourceID     *string             `json:"sourceID,omitempty"`
	PerformedBy  string              `json:"performedBy"`
	MovementDate time.Time           `json:"movementDate"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:   m.MovementID,
		LedgerKind:   m.LedgerKind,
		AccountID:    m.AccountID,
		MovementType: m.MovementType,
		Amount:       m.Amount,
		Reference:    m.Reference,
		Description:  m.Description,
		SourceType:   m.SourceType,
		SourceID:     m.SourceID,
		PerformedBy:  m.PerformedBy,
		MovementDate: m.MovementDate,
		CreatedAt:    m.CreatedAt,
	}
}

// ToListMovementResponse converts a slice of domain.Movement to response DTOs
func ToListMovementResponse(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i])
	}
	return res
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movements and the token for the next page.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}
