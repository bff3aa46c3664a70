package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestShift_Close(t *testing.T) {
	shift := domain.Shift{ShiftID: "s1", Status: domain.ShiftOpen, OpeningAmount: decimal.NewFromInt(300)}
	closedAt := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)

	shift.Close(domain.ShiftClosing{
		CountedAmount:     decimal.NewFromInt(1140),
		LeftInCash:        decimal.NewFromInt(300),
		DiscrepancyReason: stringPtr("short"),
	}, decimal.NewFromInt(1150), "user-1", closedAt)

	assert.False(t, shift.IsOpen())
	assert.Equal(t, domain.ShiftClosed, shift.Status)
	require.NotNil(t, shift.Discrepancy)
	assert.True(t, decimal.NewFromInt(-10).Equal(*shift.Discrepancy))
	assert.True(t, decimal.NewFromInt(1150).Equal(*shift.ExpectedAmount))
	assert.True(t, decimal.NewFromInt(1140).Equal(*shift.CountedAmount))
	assert.True(t, decimal.NewFromInt(300).Equal(*shift.LeftInCash))
	assert.Equal(t, "user-1", *shift.ClosedBy)
	assert.Equal(t, closedAt, *shift.ClosedAt)
	assert.Equal(t, "short", *shift.DiscrepancyReason)
	assert.Nil(t, shift.DiscrepancyNotes)
}

func TestLedgerKind_AllowsMovementType(t *testing.T) {
	assert.True(t, domain.LedgerBankAccount.AllowsMovementType(domain.MovementTransferOut))
	assert.True(t, domain.LedgerSafeBox.AllowsMovementType(domain.MovementDeposit))
	assert.False(t, domain.LedgerSafeBox.AllowsMovementType(domain.MovementCashIn))
	assert.True(t, domain.LedgerShift.AllowsMovementType(domain.MovementCashOut))
	assert.False(t, domain.LedgerShift.AllowsMovementType(domain.MovementDeposit))
}

func TestLedgerKindFor(t *testing.T) {
	k, ok := domain.LedgerKindFor(domain.KindBankAccount)
	assert.True(t, ok)
	assert.Equal(t, domain.LedgerBankAccount, k)

	_, ok = domain.LedgerKindFor(domain.KindCashRegister)
	assert.False(t, ok)
}
