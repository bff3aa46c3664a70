package accounting_test

import (
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mv(accountID string, t domain.MovementType, amount int64) domain.Movement {
	return domain.Movement{AccountID: accountID, MovementType: t, Amount: decimal.NewFromInt(amount)}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name     string
		movement domain.Movement
		want     decimal.Decimal
	}{
		{"deposit is positive", mv("a", domain.MovementDeposit, 10), decimal.NewFromInt(10)},
		{"transfer in is positive", mv("a", domain.MovementTransferIn, 10), decimal.NewFromInt(10)},
		{"cash in is positive", mv("a", domain.MovementCashIn, 10), decimal.NewFromInt(10)},
		{"withdrawal is negative", mv("a", domain.MovementWithdrawal, 10), decimal.NewFromInt(-10)},
		{"transfer out is negative", mv("a", domain.MovementTransferOut, 10), decimal.NewFromInt(-10)},
		{"cash out is negative", mv("a", domain.MovementCashOut, 10), decimal.NewFromInt(-10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(accounting.SignedAmount(tt.movement)), "got %s", accounting.SignedAmount(tt.movement))
		})
	}
}

func TestFoldBalance_OrderIndependent(t *testing.T) {
	initial := decimal.NewFromInt(1000)
	movements := []domain.Movement{
		mv("a", domain.MovementDeposit, 500),
		mv("a", domain.MovementWithdrawal, 120),
		mv("a", domain.MovementTransferIn, 30),
		mv("a", domain.MovementTransferOut, 10),
	}
	reversed := []domain.Movement{movements[3], movements[2], movements[1], movements[0]}

	want := decimal.NewFromInt(1400)
	assert.True(t, want.Equal(accounting.FoldBalance(initial, movements)))
	assert.True(t, want.Equal(accounting.FoldBalance(initial, reversed)))
}

func TestFoldBalance_AllowsNegative(t *testing.T) {
	got := accounting.FoldBalance(decimal.NewFromInt(100), []domain.Movement{mv("a", domain.MovementWithdrawal, 250)})
	assert.True(t, decimal.NewFromInt(-150).Equal(got))
}

func TestFoldBalances(t *testing.T) {
	initial := map[string]decimal.Decimal{
		"bank": decimal.NewFromInt(500),
		"safe": decimal.NewFromInt(1000),
	}
	movements := []domain.Movement{
		mv("safe", domain.MovementWithdrawal, 200),
		mv("bank", domain.MovementTransferIn, 200),
		mv("unknown", domain.MovementDeposit, 999),
	}

	got := accounting.FoldBalances(initial, movements)

	assert.Len(t, got, 2)
	assert.True(t, decimal.NewFromInt(700).Equal(got["bank"]))
	assert.True(t, decimal.NewFromInt(800).Equal(got["safe"]))
	assert.True(t, decimal.NewFromInt(500).Equal(initial["bank"]), "input map must not be mutated")
}

func TestShiftCalculator_Summarize(t *testing.T) {
	calc := accounting.NewShiftCalculator("", nil)
	shift := domain.Shift{ShiftID: "s1", OpeningAmount: decimal.NewFromInt(300)}
	sales := []domain.Sale{
		{SaleID: "1", Total: decimal.NewFromInt(600), VoucherType: "ticket", Payments: []domain.SalePayment{
			{MethodName: "Efectivo", Amount: decimal.NewFromInt(600)},
		}},
		{SaleID: "2", Total: decimal.NewFromInt(700), VoucherType: "factura_b", Payments: []domain.SalePayment{
			{MethodName: "efectivo", Amount: decimal.NewFromInt(400)},
			{MethodName: "tarjeta", Amount: decimal.NewFromInt(300)},
		}},
		{SaleID: "3", Total: decimal.NewFromInt(50), VoucherType: "credit_note", Payments: []domain.SalePayment{
			{MethodName: "efectivo", Amount: decimal.NewFromInt(50)},
		}},
	}
	movements := []domain.Movement{mv("s1", domain.MovementCashOut, 100)}

	summary := calc.Summarize(shift, sales, movements)

	assert.Equal(t, "s1", summary.ShiftID)
	assert.True(t, decimal.NewFromInt(1300).Equal(summary.GrossCollections))
	assert.True(t, decimal.NewFromInt(50).Equal(summary.Refunds))
	assert.True(t, decimal.NewFromInt(1250).Equal(summary.NetCollections))
	assert.True(t, decimal.NewFromInt(950).Equal(summary.CashFromSales))
	assert.True(t, decimal.Zero.Equal(summary.CashIn))
	assert.True(t, decimal.NewFromInt(100).Equal(summary.CashOut))
	assert.True(t, decimal.NewFromInt(1150).Equal(summary.CurrentCashAmount))
}

func TestShiftCalculator_CustomCashMethod(t *testing.T) {
	calc := accounting.NewShiftCalculator("cash", []string{"REFUND"})
	sale := domain.Sale{Total: decimal.NewFromInt(20), VoucherType: "refund", Payments: []domain.SalePayment{
		{MethodName: "CASH", Amount: decimal.NewFromInt(20)},
		{MethodName: "efectivo", Amount: decimal.NewFromInt(5)},
	}}

	assert.True(t, calc.IsCreditNote(sale))
	assert.True(t, decimal.NewFromInt(20).Equal(calc.CashPortion(sale)))
}
