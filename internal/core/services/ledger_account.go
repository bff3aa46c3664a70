package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MovementMeta describes the movement a LedgerAccount writes.
type MovementMeta struct {
	Reference    string
	Description  string
	SourceType   domain.SourceType
	SourceID     *string
	PerformedBy  string
	MovementDate time.Time
}

// LedgerAccount is any account that can receive or release funds inside a transaction.
// Bank accounts, safe boxes and cash registers (through their open shift) implement it.
type LedgerAccount interface {
	Ref() domain.AccountRef
	CurrencyCode() string
	RecordInbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error)
	RecordOutbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error)
}

func newMovement(ledger domain.LedgerKind, accountID string, movementType domain.MovementType, amount decimal.Decimal, meta MovementMeta, now time.Time) domain.Movement {
	date := meta.MovementDate
	if date.IsZero() {
		date = now
	}
	return domain.Movement{
		MovementID:   uuid.NewString(),
		LedgerKind:   ledger,
		AccountID:    accountID,
		MovementType: movementType,
		Amount:       amount,
		Reference:    meta.Reference,
		Description:  meta.Description,
		SourceType:   meta.SourceType,
		SourceID:     meta.SourceID,
		PerformedBy:  meta.PerformedBy,
		MovementDate: date,
		AuditFields:  domain.NewAuditFields(meta.PerformedBy, now),
	}
}

// treasuryAccount is a bank account or safe box seen as a LedgerAccount.
type treasuryAccount struct {
	account   domain.Account
	ledger    domain.LedgerKind
	inbound   domain.MovementType
	outbound  domain.MovementType
	movements portsrepo.MovementTxWriter
}

func newBankLedgerAccount(account domain.Account, movements portsrepo.MovementTxWriter) LedgerAccount {
	return &treasuryAccount{
		account:   account,
		ledger:    domain.LedgerBankAccount,
		inbound:   domain.MovementTransferIn,
		outbound:  domain.MovementTransferOut,
		movements: movements,
	}
}

func newSafeLedgerAccount(account domain.Account, movements portsrepo.MovementTxWriter) LedgerAccount {
	return &treasuryAccount{
		account:   account,
		ledger:    domain.LedgerSafeBox,
		inbound:   domain.MovementDeposit,
		outbound:  domain.MovementWithdrawal,
		movements: movements,
	}
}

func (a *treasuryAccount) Ref() domain.AccountRef {
	return domain.AccountRef{Kind: a.account.Kind, ID: a.account.AccountID}
}

func (a *treasuryAccount) CurrencyCode() string { return a.account.CurrencyCode }

func (a *treasuryAccount) RecordInbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	return a.record(ctx, tx, a.inbound, amount, meta)
}

func (a *treasuryAccount) RecordOutbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	return a.record(ctx, tx, a.outbound, amount, meta)
}

func (a *treasuryAccount) record(ctx context.Context, tx pgx.Tx, movementType domain.MovementType, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	if err := validatePositiveAmount(amount); err != nil {
		return nil, err
	}
	m := newMovement(a.ledger, a.account.AccountID, movementType, amount, meta, time.Now().UTC())
	if err := a.movements.SaveMovementTx(ctx, tx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// shiftAccount is a cash register seen through its open shift.
type shiftAccount struct {
	register  domain.CashRegister
	shiftID   string
	shifts    portsrepo.ShiftTxWriter
	movements portsrepo.MovementTxWriter
}

func (a *shiftAccount) Ref() domain.AccountRef {
	return domain.AccountRef{Kind: domain.KindCashRegister, ID: a.register.CashRegisterID}
}

func (a *shiftAccount) CurrencyCode() string { return a.register.CurrencyCode }

func (a *shiftAccount) RecordInbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	return recordShiftCash(ctx, tx, a.shifts, a.movements, a.shiftID, domain.MovementCashIn, amount, meta)
}

func (a *shiftAccount) RecordOutbound(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	return recordShiftCash(ctx, tx, a.shifts, a.movements, a.shiftID, domain.MovementCashOut, amount, meta)
}

// recordShiftCash writes a cash movement on a shift while holding a share lock on the shift row.
// A concurrent close takes FOR UPDATE on the same row, so a write either lands before the
// close computes its expected amount or observes the closed status and fails.
func recordShiftCash(ctx context.Context, tx pgx.Tx, shifts portsrepo.ShiftTxWriter, movements portsrepo.MovementTxWriter,
	shiftID string, movementType domain.MovementType, amount decimal.Decimal, meta MovementMeta) (*domain.Movement, error) {
	if err := validatePositiveAmount(amount); err != nil {
		return nil, err
	}
	shift, err := shifts.LockShiftTx(ctx, tx, shiftID, portsrepo.LockForShare)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: %s", ErrShiftNotOpen, shiftID)
	}
	m := newMovement(domain.LedgerShift, shiftID, movementType, amount, meta, time.Now().UTC())
	if err := movements.SaveMovementTx(ctx, tx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// registerLookup is the part of the account repository the resolver needs.
type registerLookup interface {
	portsrepo.AccountReader
	portsrepo.CashRegisterReader
}

// ledgerResolver turns an AccountRef into a LedgerAccount that accepts movements.
type ledgerResolver struct {
	accounts   registerLookup
	openShifts portssvc.ShiftReaderSvc
	shifts     portsrepo.ShiftTxWriter
	movements  portsrepo.MovementTxWriter
}

func (r ledgerResolver) resolve(ctx context.Context, ref domain.AccountRef) (LedgerAccount, error) {
	switch ref.Kind {
	case domain.KindBankAccount, domain.KindSafeBox:
		account, err := r.accounts.FindAccountByID(ctx, ref.Kind, ref.ID)
		if err != nil {
			return nil, err
		}
		if !account.IsActive() {
			return nil, fmt.Errorf("%w: %s", ErrAccountArchived, ref)
		}
		if ref.Kind == domain.KindBankAccount {
			return newBankLedgerAccount(*account, r.movements), nil
		}
		return newSafeLedgerAccount(*account, r.movements), nil
	case domain.KindCashRegister:
		register, err := r.accounts.FindCashRegisterByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if !register.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrCashRegisterInactive, ref.ID)
		}
		shift, err := r.openShifts.GetOpenShift(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		return &shiftAccount{register: *register, shiftID: shift.ShiftID, shifts: r.shifts, movements: r.movements}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidAccountKind, ref.Kind)
}
