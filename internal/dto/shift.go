package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest opens a shift with the given float.
type OpenShiftRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount" binding:"gte=0"`
}

// ShiftCashRequest adds or removes cash from an open shift.
type ShiftCashRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Notes  *string         `json:"notes" binding:"omitempty,max=500"`
}

// AccountRefRequest names an account in a request body.
type AccountRefRequest struct {
	Type domain.AccountKind `json:"type" binding:"required,oneof=bank_account safe_box"`
	ID   string             `json:"id" binding:"required"`
}

// CloseShiftRequest carries the counted cash and how much stays in the drawer.
type CloseShiftRequest struct {
	CountedAmount     decimal.Decimal    `json:"countedAmount" binding:"gte=0"`
	LeftInCash        decimal.Decimal    `json:"leftInCash" binding:"gte=0"`
	DiscrepancyReason *string            `json:"discrepancyReason" binding:"omitempty,max=120"`
	DiscrepancyNotes  *string            `json:"discrepancyNotes" binding:"omitempty,max=1000"`
	DepositTo         *AccountRefRequest `json:"depositTo"` // Optional destination for counted cash not left in the drawer
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID           string             `json:"shiftID"`
	CashRegisterID    string             `json:"cashRegisterID"`
	Status            domain.ShiftStatus `json:"status"`
	OpenedBy          string             `json:"openedBy"`
	OpenedAt          time.Time          `json:"openedAt"`
	OpeningAmount     decimal.Decimal    `json:"openingAmount"`
	ClosedBy          *string            `json:"closedBy,omitempty"`
	ClosedAt          *time.Time         `json:"closedAt,omitempty"`
	ExpectedAmount    *decimal.Decimal   `json:"expectedAmount,omitempty"`
	CountedAmount     *decimal.Decimal   `json:"countedAmount,omitempty"`
	LeftInCash        *decimal.Decimal   `json:"leftInCash,omitempty"`
	Discrepancy       *decimal.Decimal   `json:"discrepancy,omitempty"`
	DiscrepancyReason *string            `json:"discrepancyReason,omitempty"`
	DiscrepancyNotes  *string            `json:"discrepancyNotes,omitempty"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:           s.ShiftID,
		CashRegisterID:    s.CashRegisterID,
		Status:            s.Status,
		OpenedBy:          s.OpenedBy,
		OpenedAt:          s.OpenedAt,
		OpeningAmount:     s.OpeningAmount,
		ClosedBy:          s.ClosedBy,
		ClosedAt:          s.ClosedAt,
		ExpectedAmount:    s.ExpectedAmount,
		CountedAmount:     s.CountedAmount,
		LeftInCash:        s.LeftInCash,
		Discrepancy:       s.Discrepancy,
		DiscrepancyReason: s.DiscrepancyReason,
		DiscrepancyNotes:  s.DiscrepancyNotes,
	}
}

// LastClosedShiftResponse carries the float left in the drawer by the previous shift.
type LastClosedShiftResponse struct {
	ShiftID    string          `json:"shiftID"`
	ClosedAt   *time.Time      `json:"closedAt,omitempty"`
	LeftInCash decimal.Decimal `json:"leftInCash"`
}

// ToLastClosedShiftResponse converts a closed domain.Shift to LastClosedShiftResponse
func ToLastClosedShiftResponse(s *domain.Shift) LastClosedShiftResponse {
	left := decimal.Zero
	if s.LeftInCash != nil {
		left = *s.LeftInCash
	}
	return LastClosedShiftResponse{ShiftID: s.ShiftID, ClosedAt: s.ClosedAt, LeftInCash: left}
}

// ListShiftsParams defines query parameters for listing shifts.
type ListShiftsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListShiftsResponse wraps a page of shifts and the token for the next page.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ShiftSummaryResponse is the derived cash position of a shift.
type ShiftSummaryResponse = domain.ShiftSummary
