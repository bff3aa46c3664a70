package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind identifies who owns a movement: a bank account, a safe box or a shift.
type LedgerKind string

const (
	LedgerBankAccount LedgerKind = "bank_account"
	LedgerSafeBox     LedgerKind = "safe_box"
	LedgerShift       LedgerKind = "shift"
)

// MovementType is the kind-specific vocabulary of a movement.
type MovementType string

const (
	MovementDeposit     MovementType = "deposit"
	MovementWithdrawal  MovementType = "withdrawal"
	MovementTransferIn  MovementType = "transfer_in"
	MovementTransferOut MovementType = "transfer_out"
	MovementCashIn      MovementType = "cash_in"
	MovementCashOut     MovementType = "cash_out"
)

// SourceType records which process created a movement.
type SourceType string

const (
	SourceManual       SourceType = "manual"
	SourceTransfer     SourceType = "transfer"
	SourceShiftDeposit SourceType = "shift_deposit"
	SourceSale         SourceType = "sale"
	SourceShiftCash    SourceType = "shift_cash"
)

// Movement is a single cash event against a bank account, safe box or shift.
// Amount is always positive; the sign comes from MovementType.
type Movement struct {
	MovementID   string          `json:"movementID"`
	LedgerKind   LedgerKind      `json:"ledgerKind"`
	AccountID    string          `json:"accountID"` // shift id when LedgerKind is shift
	MovementType MovementType    `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	SourceType   SourceType      `json:"sourceType"`
	SourceID     *string         `json:"sourceID,omitempty"`
	PerformedBy  string          `json:"performedBy"`
	MovementDate time.Time       `json:"movementDate"`
	AuditFields
}

// IsManual reports whether the movement may be edited or deleted on its own.
func (m Movement) IsManual() bool {
	return m.SourceType == SourceManual
}

// LedgerKindFor maps an account kind to the ledger its movements are stored under.
// Cash registers have no ledger of their own; their movements belong to a shift.
func LedgerKindFor(kind AccountKind) (LedgerKind, bool) {
	switch kind {
	case KindBankAccount:
		return LedgerBankAccount, true
	case KindSafeBox:
		return LedgerSafeBox, true
	}
	return "", false
}

var movementVocabulary = map[LedgerKind]map[MovementType]bool{
	LedgerBankAccount: {
		MovementDeposit: true, MovementWithdrawal: true, MovementTransferIn: true, MovementTransferOut: true,
	},
	LedgerSafeBox: {
		MovementDeposit: true, MovementWithdrawal: true, MovementTransferIn: true, MovementTransferOut: true,
	},
	LedgerShift: {
		MovementCashIn: true, MovementCashOut: true,
	},
}

// AllowsMovementType reports whether t belongs to the vocabulary of ledger kind k.
func (k LedgerKind) AllowsMovementType(t MovementType) bool {
	return movementVocabulary[k][t]
}

// Transfer is the linked pair of movements written by a transfer.
type Transfer struct {
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      AccountRef      `json:"source"`
	Destination AccountRef      `json:"destination"`
	Outbound    Movement        `json:"outbound"`
	Inbound     Movement        `json:"inbound"`
}
