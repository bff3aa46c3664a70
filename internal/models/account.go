package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of bank_accounts.
type BankAccount struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	BankName       string          `db:"bank_name"`
	AccountNumber  string          `db:"account_number"`
	CurrencyCode   string          `db:"currency_code"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	BalanceDate    time.Time       `db:"balance_date"`
	Status         string          `db:"status"`
	AuditFields
}

// SafeBox is a row of safe_boxes.
type SafeBox struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Location       string          `db:"location"`
	CurrencyCode   string          `db:"currency_code"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	BalanceDate    time.Time       `db:"balance_date"`
	Status         string          `db:"status"`
	AuditFields
}

// CashRegister is a row of cash_registers.
type CashRegister struct {
	CashRegisterID string `db:"cash_register_id"`
	Name           string `db:"name"`
	CurrencyCode   string `db:"currency_code"`
	Location       string `db:"location"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
