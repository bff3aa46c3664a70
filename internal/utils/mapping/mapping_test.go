package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftMapping_OpenShiftHasNullFigures(t *testing.T) {
	shift := domain.Shift{
		ShiftID:        "s1",
		CashRegisterID: "r1",
		OpenedAt:       time.Now().UTC(),
		OpeningAmount:  decimal.NewFromInt(300),
		Status:         domain.ShiftOpen,
	}

	m := mapping.ToModelShift(shift)

	assert.False(t, m.ExpectedAmount.Valid)
	assert.False(t, m.Discrepancy.Valid)
	assert.Equal(t, "open", m.Status)
	assert.Nil(t, mapping.ToDomainShift(m).Discrepancy)
}

func TestShiftMapping_ClosedShiftKeepsFigures(t *testing.T) {
	m := models.Shift{
		ShiftID:     "s1",
		Status:      "closed",
		Discrepancy: decimal.NewNullDecimal(decimal.NewFromInt(-10)),
		LeftInCash:  decimal.NewNullDecimal(decimal.NewFromInt(200)),
	}

	d := mapping.ToDomainShift(m)

	require.NotNil(t, d.Discrepancy)
	assert.True(t, decimal.NewFromInt(-10).Equal(*d.Discrepancy))
	assert.True(t, decimal.NewFromInt(200).Equal(*d.LeftInCash))
	assert.Nil(t, d.ExpectedAmount)
	assert.Equal(t, domain.ShiftClosed, d.Status)
}

func TestToDomainSales_JoinsPayments(t *testing.T) {
	sales := []models.Sale{
		{SaleID: "a", Total: decimal.NewFromInt(100), VoucherType: "ticket"},
		{SaleID: "b", Total: decimal.NewFromInt(50), VoucherType: "credit_note"},
	}
	payments := []models.SalePayment{
		{SaleID: "a", MethodName: "efectivo", Amount: decimal.NewFromInt(60)},
		{SaleID: "a", MethodName: "tarjeta", Amount: decimal.NewFromInt(40)},
	}

	got := mapping.ToDomainSales(sales, payments)

	require.Len(t, got, 2)
	assert.Len(t, got[0].Payments, 2)
	assert.Empty(t, got[1].Payments)
	assert.Equal(t, "credit_note", got[1].VoucherType)
}
