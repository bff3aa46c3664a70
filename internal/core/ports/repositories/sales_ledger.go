package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// SalesLedgerReader is the read-only view of the sales subsystem.
type SalesLedgerReader interface {
	// ListCompletedSalesByShift returns the completed sales of a shift with their payment breakdown.
	ListCompletedSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error)
}
