package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a row of movements.
type Movement struct {
	MovementID   string          `db:"movement_id"`
	LedgerKind   string          `db:"ledger_kind"`
	AccountID    string          `db:"account_id"`
	MovementType string          `db:"movement_type"`
	Amount       decimal.Decimal `db:"amount"`
	Reference    string          `db:"reference"`
	Description  string          `db:"description"`
	SourceType   string          `db:"source_type"`
	SourceID     *string         `db:"source_id"` // Nullable
	PerformedBy  string          `db:"performed_by"`
	MovementDate time.Time       `db:"movement_date"`
	AuditFields
}
