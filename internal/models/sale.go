package models

import "github.com/shopspring/decimal"

// Sale is a row of the sales read model.
type Sale struct {
	SaleID      string          `db:"sale_id"`
	ShiftID     string          `db:"shift_id"`
	Total       decimal.Decimal `db:"total"`
	VoucherType string          `db:"voucher_type"`
}

// SalePayment is a row of sale_payments.
type SalePayment struct {
	SaleID     string          `db:"sale_id"`
	MethodName string          `db:"method_name"`
	Amount     decimal.Decimal `db:"amount"`
}
