package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a row of shifts. Reconciliation columns are NULL while the shift is open.
type Shift struct {
	ShiftID           string              `db:"shift_id"`
	CashRegisterID    string              `db:"cash_register_id"`
	OpenedBy          string              `db:"opened_by"`
	OpenedAt          time.Time           `db:"opened_at"`
	OpeningAmount     decimal.Decimal     `db:"opening_amount"`
	Status            string              `db:"status"`
	ClosedBy          *string             `db:"closed_by"`
	ClosedAt          *time.Time          `db:"closed_at"`
	ExpectedAmount    decimal.NullDecimal `db:"expected_amount"`
	CountedAmount     decimal.NullDecimal `db:"counted_amount"`
	LeftInCash        decimal.NullDecimal `db:"left_in_cash"`
	Discrepancy       decimal.NullDecimal `db:"discrepancy"`
	DiscrepancyReason *string             `db:"discrepancy_reason"`
	DiscrepancyNotes  *string             `db:"discrepancy_notes"`
}
