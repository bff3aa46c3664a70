package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind identifies which registry an account belongs to.
type AccountKind string

const (
	KindBankAccount  AccountKind = "bank_account"
	KindSafeBox      AccountKind = "safe_box"
	KindCashRegister AccountKind = "cash_register"
)

// IsValid reports whether k is one of the known account kinds.
func (k AccountKind) IsValid() bool {
	switch k {
	case KindBankAccount, KindSafeBox, KindCashRegister:
		return true
	}
	return false
}

// HoldsBalance reports whether accounts of this kind carry their own initial balance.
// Cash registers do not; their cash lives in the open shift.
func (k AccountKind) HoldsBalance() bool {
	return k == KindBankAccount || k == KindSafeBox
}

// AccountStatus is the lifecycle status of a bank account or safe box.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusArchived AccountStatus = "archived"
)

// Account is the part shared by bank accounts and safe boxes.
type Account struct {
	AccountID      string          `json:"accountID"`
	Kind           AccountKind     `json:"kind"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	BalanceDate    time.Time       `json:"balanceDate"`
	Status         AccountStatus   `json:"status"`
	AuditFields
}

// IsActive reports whether the account accepts new movements.
func (a Account) IsActive() bool {
	return a.Status == StatusActive
}

// BankAccount is an account held at a bank.
type BankAccount struct {
	Account
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// SafeBox is a physical safe holding cash on premises.
type SafeBox struct {
	Account
	Location string `json:"location"`
}

// CashRegister is a point-of-sale drawer. It has no balance of its own;
// its spendable cash is scoped to the currently open Shift.
type CashRegister struct {
	CashRegisterID string `json:"cashRegisterID"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currencyCode"`
	Location       string `json:"location"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// AccountRef names one account of any kind.
type AccountRef struct {
	Kind AccountKind `json:"kind"`
	ID   string      `json:"id"`
}

func (r AccountRef) String() string {
	return string(r.Kind) + ":" + r.ID
}
