package domain

import "github.com/shopspring/decimal"

// Sale is a completed sale read from the sales ledger.
type Sale struct {
	SaleID      string          `json:"saleID"`
	ShiftID     string          `json:"shiftID"`
	Total       decimal.Decimal `json:"total"`
	VoucherType string          `json:"voucherType"`
	Payments    []SalePayment   `json:"payments"`
}

// SalePayment is one line of a sale's payment-method breakdown.
type SalePayment struct {
	MethodName string          `json:"methodName"`
	Amount     decimal.Decimal `json:"amount"`
}
