package dto

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse defines the data returned for a single balance query.
type BalanceResponse struct {
	AccountType domain.AccountKind `json:"accountType"`
	AccountID   string             `json:"accountID"`
	Balance     decimal.Decimal    `json:"balance"`
}

// BatchBalancesRequest asks for the balances of many accounts of one kind.
type BatchBalancesRequest struct {
	AccountType domain.AccountKind `json:"accountType" binding:"required,oneof=bank_account safe_box"`
	AccountIDs  []string           `json:"accountIDs" binding:"required,min=1,max=200,dive,required"`
}

// BatchBalancesResponse maps account id to balance.
type BatchBalancesResponse struct {
	AccountType domain.AccountKind         `json:"accountType"`
	Balances    map[string]decimal.Decimal `json:"balances"`
}
