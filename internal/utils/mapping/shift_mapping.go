package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:           d.ShiftID,
		CashRegisterID:    d.CashRegisterID,
		OpenedBy:          d.OpenedBy,
		OpenedAt:          d.OpenedAt,
		OpeningAmount:     d.OpeningAmount,
		Status:            string(d.Status),
		ClosedBy:          d.ClosedBy,
		ClosedAt:          d.ClosedAt,
		ExpectedAmount:    toNullDecimal(d.ExpectedAmount),
		CountedAmount:     toNullDecimal(d.CountedAmount),
		LeftInCash:        toNullDecimal(d.LeftInCash),
		Discrepancy:       toNullDecimal(d.Discrepancy),
		DiscrepancyReason: d.DiscrepancyReason,
		DiscrepancyNotes:  d.DiscrepancyNotes,
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:           m.ShiftID,
		CashRegisterID:    m.CashRegisterID,
		OpenedBy:          m.OpenedBy,
		OpenedAt:          m.OpenedAt,
		OpeningAmount:     m.OpeningAmount,
		Status:            domain.ShiftStatus(m.Status),
		ClosedBy:          m.ClosedBy,
		ClosedAt:          m.ClosedAt,
		ExpectedAmount:    fromNullDecimal(m.ExpectedAmount),
		CountedAmount:     fromNullDecimal(m.CountedAmount),
		LeftInCash:        fromNullDecimal(m.LeftInCash),
		Discrepancy:       fromNullDecimal(m.Discrepancy),
		DiscrepancyReason: m.DiscrepancyReason,
		DiscrepancyNotes:  m.DiscrepancyNotes,
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
