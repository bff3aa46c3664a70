package accounting

import (
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCashPaymentMethod is the payment method name whose amounts count as drawer cash.
const DefaultCashPaymentMethod = "efectivo"

// DefaultCreditNoteVoucherTypes are the voucher types treated as refunds.
var DefaultCreditNoteVoucherTypes = []string{"credit_note", "nota_credito_a", "nota_credito_b", "nota_credito_c"}

// SignedAmount applies the sign of the movement type to its amount.
// Inbound types (deposit, transfer_in, cash_in) are positive, outbound types negative.
func SignedAmount(m domain.Movement) decimal.Decimal {
	switch m.MovementType {
	case domain.MovementWithdrawal, domain.MovementTransferOut, domain.MovementCashOut:
		return m.Amount.Neg()
	default:
		return m.Amount
	}
}

// FoldBalance returns initial plus the signed sum of movements.
// The result does not depend on the order of movements and may be negative.
func FoldBalance(initial decimal.Decimal, movements []domain.Movement) decimal.Decimal {
	balance := initial
	for _, m := range movements {
		balance = balance.Add(SignedAmount(m))
	}
	return balance
}

// FoldBalances folds movements per account starting from each account's initial balance.
// Movements of accounts missing from initial are ignored.
func FoldBalances(initial map[string]decimal.Decimal, movements []domain.Movement) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(initial))
	for id, b := range initial {
		balances[id] = b
	}
	for _, m := range movements {
		b, ok := balances[m.AccountID]
		if !ok {
			continue
		}
		balances[m.AccountID] = b.Add(SignedAmount(m))
	}
	return balances
}

// ShiftCalculator derives shift summaries. The zero value is not usable; use NewShiftCalculator.
type ShiftCalculator struct {
	cashMethod  string
	creditNotes map[string]bool
}

// NewShiftCalculator builds a calculator for the given cash method and credit-note voucher types.
// Empty arguments fall back to the defaults. Comparisons are case-insensitive.
func NewShiftCalculator(cashMethod string, creditNoteTypes []string) ShiftCalculator {
	if strings.TrimSpace(cashMethod) == "" {
		cashMethod = DefaultCashPaymentMethod
	}
	if len(creditNoteTypes) == 0 {
		creditNoteTypes = DefaultCreditNoteVoucherTypes
	}
	notes := make(map[string]bool, len(creditNoteTypes))
	for _, t := range creditNoteTypes {
		notes[normalize(t)] = true
	}
	return ShiftCalculator{cashMethod: normalize(cashMethod), creditNotes: notes}
}

// IsCreditNote reports whether the sale is a refund voucher.
func (c ShiftCalculator) IsCreditNote(s domain.Sale) bool {
	return c.creditNotes[normalize(s.VoucherType)]
}

// CashPortion returns the part of the sale paid with the cash method.
func (c ShiftCalculator) CashPortion(s domain.Sale) decimal.Decimal {
	cash := decimal.Zero
	for _, p := range s.Payments {
		if normalize(p.MethodName) == c.cashMethod {
			cash = cash.Add(p.Amount)
		}
	}
	return cash
}

// Summarize computes the cash position of a shift:
// currentCashAmount = opening + cashFromSales + cashIn - cashOut.
func (c ShiftCalculator) Summarize(shift domain.Shift, sales []domain.Sale, movements []domain.Movement) domain.ShiftSummary {
	summary := domain.ShiftSummary{
		ShiftID:          shift.ShiftID,
		OpeningAmount:    shift.OpeningAmount,
		GrossCollections: decimal.Zero,
		Refunds:          decimal.Zero,
		CashFromSales:    decimal.Zero,
		CashIn:           decimal.Zero,
		CashOut:          decimal.Zero,
	}

	for _, s := range sales {
		cash := c.CashPortion(s)
		if c.IsCreditNote(s) {
			summary.Refunds = summary.Refunds.Add(s.Total)
			summary.CashFromSales = summary.CashFromSales.Sub(cash)
			continue
		}
		summary.GrossCollections = summary.GrossCollections.Add(s.Total)
		summary.CashFromSales = summary.CashFromSales.Add(cash)
	}

	for _, m := range movements {
		switch m.MovementType {
		case domain.MovementCashIn:
			summary.CashIn = summary.CashIn.Add(m.Amount)
		case domain.MovementCashOut:
			summary.CashOut = summary.CashOut.Add(m.Amount)
		}
	}

	summary.NetCollections = summary.GrossCollections.Sub(summary.Refunds)
	summary.CurrentCashAmount = shift.OpeningAmount.
		Add(summary.CashFromSales).
		Add(summary.CashIn).
		Sub(summary.CashOut)
	return summary
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
