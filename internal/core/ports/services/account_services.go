package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// BankAccountSvc defines operations on bank accounts.
type BankAccountSvc interface {
	// CreateBankAccount registers a new bank account with its opening balance.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)

	// GetBankAccount retrieves a bank account by id.
	GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves bank accounts, optionally including archived ones.
	ListBankAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.BankAccount, error)

	// UpdateBankAccount changes the descriptive fields of a bank account.
	UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error)
}

// SafeBoxSvc defines operations on safe boxes.
type SafeBoxSvc interface {
	CreateSafeBox(ctx context.Context, req dto.CreateSafeBoxRequest, userID string) (*domain.SafeBox, error)
	GetSafeBox(ctx context.Context, accountID string) (*domain.SafeBox, error)
	ListSafeBoxes(ctx context.Context, params dto.ListAccountsParams) ([]domain.SafeBox, error)
	UpdateSafeBox(ctx context.Context, accountID string, req dto.UpdateSafeBoxRequest, userID string) (*domain.SafeBox, error)
}

// AccountLifecycleSvc archives and restores bank accounts and safe boxes.
// Archived accounts keep their history but reject new movements.
type AccountLifecycleSvc interface {
	ArchiveAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error
	RestoreAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error
}

// CashRegisterSvc defines operations on cash registers.
type CashRegisterSvc interface {
	CreateCashRegister(ctx context.Context, req dto.CreateCashRegisterRequest, userID string) (*domain.CashRegister, error)
	GetCashRegister(ctx context.Context, registerID string) (*domain.CashRegister, error)
	ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	BankAccountSvc
	SafeBoxSvc
	AccountLifecycleSvc
	CashRegisterSvc
}
