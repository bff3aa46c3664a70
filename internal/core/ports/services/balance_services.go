package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc computes balances from initial balances and movement history.
type BalanceSvc interface {
	// GetBalance returns the balance of one account of any kind.
	// For a cash register it is the current cash of its open shift.
	GetBalance(ctx context.Context, kind domain.AccountKind, accountID string) (decimal.Decimal, error)

	// GetBalances returns the balances of many bank accounts or safe boxes keyed by id.
	GetBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error)
}
