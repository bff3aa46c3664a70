package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines lookups shared by bank accounts and safe boxes.
type AccountReader interface {
	// FindAccountByID returns the common part of a bank account or safe box.
	FindAccountByID(ctx context.Context, kind domain.AccountKind, accountID string) (*domain.Account, error)

	// FindInitialBalances returns initial balances keyed by account id in one query.
	// It fails with ErrNotFound if any id is unknown.
	FindInitialBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error)
}

// AccountStatusWriter archives and restores bank accounts and safe boxes.
type AccountStatusWriter interface {
	UpdateAccountStatus(ctx context.Context, kind domain.AccountKind, accountID string, status domain.AccountStatus, userID string, updatedAt time.Time) error
}

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, includeArchived bool) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank accounts.
type BankAccountWriter interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
}

// SafeBoxReader defines read operations for safe boxes.
type SafeBoxReader interface {
	FindSafeBoxByID(ctx context.Context, accountID string) (*domain.SafeBox, error)
	ListSafeBoxes(ctx context.Context, includeArchived bool) ([]domain.SafeBox, error)
}

// SafeBoxWriter defines write operations for safe boxes.
type SafeBoxWriter interface {
	SaveSafeBox(ctx context.Context, box domain.SafeBox) error
	UpdateSafeBox(ctx context.Context, box domain.SafeBox) error
}

// CashRegisterReader defines read operations for cash registers.
type CashRegisterReader interface {
	FindCashRegisterByID(ctx context.Context, registerID string) (*domain.CashRegister, error)
	ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error)
}

// CashRegisterWriter defines write operations for cash registers.
type CashRegisterWriter interface {
	SaveCashRegister(ctx context.Context, register domain.CashRegister) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountStatusWriter
	BankAccountReader
	BankAccountWriter
	SafeBoxReader
	SafeBoxWriter
	CashRegisterReader
	CashRegisterWriter
}
