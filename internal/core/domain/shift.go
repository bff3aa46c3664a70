package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus is the state of a cash-register shift. Closed is terminal.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift is the custody period of a cash-register drawer between open and close.
// The reconciliation fields are nil until the shift is closed.
type Shift struct {
	ShiftID           string           `json:"shiftID"`
	CashRegisterID    string           `json:"cashRegisterID"`
	OpenedBy          string           `json:"openedBy"`
	OpenedAt          time.Time        `json:"openedAt"`
	OpeningAmount     decimal.Decimal  `json:"openingAmount"`
	Status            ShiftStatus      `json:"status"`
	ClosedBy          *string          `json:"closedBy,omitempty"`
	ClosedAt          *time.Time       `json:"closedAt,omitempty"`
	ExpectedAmount    *decimal.Decimal `json:"expectedAmount,omitempty"`
	CountedAmount     *decimal.Decimal `json:"countedAmount,omitempty"`
	LeftInCash        *decimal.Decimal `json:"leftInCash,omitempty"`
	Discrepancy       *decimal.Decimal `json:"discrepancy,omitempty"`
	DiscrepancyReason *string          `json:"discrepancyReason,omitempty"`
	DiscrepancyNotes  *string          `json:"discrepancyNotes,omitempty"`
}

// IsOpen reports whether the shift still accepts cash movements.
func (s Shift) IsOpen() bool {
	return s.Status == ShiftOpen
}

// ShiftSummary is the cash position of a shift derived from its sales and movements.
type ShiftSummary struct {
	ShiftID           string          `json:"shiftID"`
	OpeningAmount     decimal.Decimal `json:"openingAmount"`
	GrossCollections  decimal.Decimal `json:"grossCollections"`
	Refunds           decimal.Decimal `json:"refunds"`
	NetCollections    decimal.Decimal `json:"netCollections"`
	CashFromSales     decimal.Decimal `json:"cashFromSales"`
	CashIn            decimal.Decimal `json:"cashIn"`
	CashOut           decimal.Decimal `json:"cashOut"`
	CurrentCashAmount decimal.Decimal `json:"currentCashAmount"`
}

// ShiftClosing is the reconciliation input captured when a shift is closed.
type ShiftClosing struct {
	CountedAmount     decimal.Decimal
	LeftInCash        decimal.Decimal
	DiscrepancyReason *string
	DiscrepancyNotes  *string
	DepositTo         *AccountRef
}

// Close applies the reconciliation figures and moves the shift to its terminal state.
func (s *Shift) Close(closing ShiftClosing, expected decimal.Decimal, closedBy string, closedAt time.Time) {
	discrepancy := closing.CountedAmount.Sub(expected)
	counted := closing.CountedAmount
	left := closing.LeftInCash

	s.Status = ShiftClosed
	s.ClosedBy = &closedBy
	s.ClosedAt = &closedAt
	s.ExpectedAmount = &expected
	s.CountedAmount = &counted
	s.LeftInCash = &left
	s.Discrepancy = &discrepancy
	s.DiscrepancyReason = closing.DiscrepancyReason
	s.DiscrepancyNotes = closing.DiscrepancyNotes
}
