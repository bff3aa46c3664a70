package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account registry service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

type accountOpening struct {
	initialBalance decimal.Decimal
	balanceDate    *time.Time
}

func (s *accountService) newAccount(kind domain.AccountKind, name, currency string, req accountOpening, userID string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Account{}, fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if err := checkAmountFits(req.initialBalance); err != nil {
		return domain.Account{}, err
	}
	now := s.Now()
	balanceDate := now
	if req.balanceDate != nil {
		balanceDate = req.balanceDate.UTC()
	}
	return domain.Account{
		AccountID:      uuid.NewString(),
		Kind:           kind,
		Name:           name,
		CurrencyCode:   strings.ToUpper(currency),
		InitialBalance: req.initialBalance,
		BalanceDate:    balanceDate,
		Status:         domain.StatusActive,
		AuditFields:    domain.NewAuditFields(userID, now),
	}, nil
}

func (s *accountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	account, err := s.newAccount(domain.KindBankAccount, req.Name, req.CurrencyCode,
		accountOpening{initialBalance: req.InitialBalance, balanceDate: req.BalanceDate}, userID)
	if err != nil {
		return nil, err
	}
	bank := domain.BankAccount{Account: account, BankName: req.BankName, AccountNumber: req.AccountNumber}

	if err := s.accountRepo.SaveBankAccount(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}
	s.LogInfo(ctx, "Bank account created",
		slog.String("account_id", account.AccountID),
		slog.String("currency_code", account.CurrencyCode),
		slog.String("user_id", userID))
	return &bank, nil
}

func (s *accountService) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	return s.accountRepo.FindBankAccountByID(ctx, accountID)
}

func (s *accountService) ListBankAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.BankAccount, error) {
	return s.accountRepo.ListBankAccounts(ctx, params.IncludeArchived)
}

func (s *accountService) UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	bank, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name", ErrMissingRequiredField)
		}
		bank.Name = name
	}
	if req.BankName != nil {
		bank.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		bank.AccountNumber = *req.AccountNumber
	}
	bank.LastUpdatedAt = s.Now()
	bank.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateBankAccount(ctx, *bank); err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("account_id", accountID))
		return nil, err
	}
	return bank, nil
}

func (s *accountService) CreateSafeBox(ctx context.Context, req dto.CreateSafeBoxRequest, userID string) (*domain.SafeBox, error) {
	account, err := s.newAccount(domain.KindSafeBox, req.Name, req.CurrencyCode,
		accountOpening{initialBalance: req.InitialBalance, balanceDate: req.BalanceDate}, userID)
	if err != nil {
		return nil, err
	}
	box := domain.SafeBox{Account: account, Location: req.Location}

	if err := s.accountRepo.SaveSafeBox(ctx, box); err != nil {
		s.LogError(ctx, err, "Failed to save safe box", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to create safe box: %w", err)
	}
	s.LogInfo(ctx, "Safe box created",
		slog.String("account_id", account.AccountID),
		slog.String("currency_code", account.CurrencyCode),
		slog.String("user_id", userID))
	return &box, nil
}

func (s *accountService) GetSafeBox(ctx context.Context, accountID string) (*domain.SafeBox, error) {
	return s.accountRepo.FindSafeBoxByID(ctx, accountID)
}

func (s *accountService) ListSafeBoxes(ctx context.Context, params dto.ListAccountsParams) ([]domain.SafeBox, error) {
	return s.accountRepo.ListSafeBoxes(ctx, params.IncludeArchived)
}

func (s *accountService) UpdateSafeBox(ctx context.Context, accountID string, req dto.UpdateSafeBoxRequest, userID string) (*domain.SafeBox, error) {
	box, err := s.accountRepo.FindSafeBoxByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name", ErrMissingRequiredField)
		}
		box.Name = name
	}
	if req.Location != nil {
		box.Location = *req.Location
	}
	box.LastUpdatedAt = s.Now()
	box.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateSafeBox(ctx, *box); err != nil {
		s.LogError(ctx, err, "Failed to update safe box", slog.String("account_id", accountID))
		return nil, err
	}
	return box, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error {
	return s.setStatus(ctx, kind, accountID, domain.StatusArchived, userID)
}

func (s *accountService) RestoreAccount(ctx context.Context, kind domain.AccountKind, accountID string, userID string) error {
	return s.setStatus(ctx, kind, accountID, domain.StatusActive, userID)
}

func (s *accountService) setStatus(ctx context.Context, kind domain.AccountKind, accountID string, status domain.AccountStatus, userID string) error {
	if !kind.HoldsBalance() {
		return ErrBalanceKindRequired
	}
	account, err := s.accountRepo.FindAccountByID(ctx, kind, accountID)
	if err != nil {
		return err
	}
	if account.Status == status {
		if status == domain.StatusArchived {
			return ErrAccountAlreadyArchived
		}
		return ErrAccountNotArchived
	}

	if err := s.accountRepo.UpdateAccountStatus(ctx, kind, accountID, status, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update account status",
			slog.String("account_id", accountID),
			slog.String("status", string(status)))
		return err
	}
	s.LogInfo(ctx, "Account status changed",
		slog.String("kind", string(kind)),
		slog.String("account_id", accountID),
		slog.String("status", string(status)),
		slog.String("user_id", userID))
	return nil
}

func (s *accountService) CreateCashRegister(ctx context.Context, req dto.CreateCashRegisterRequest, userID string) (*domain.CashRegister, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	register := domain.CashRegister{
		CashRegisterID: uuid.NewString(),
		Name:           name,
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		Location:       req.Location,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.accountRepo.SaveCashRegister(ctx, register); err != nil {
		s.LogError(ctx, err, "Failed to save cash register", slog.String("cash_register_id", register.CashRegisterID))
		return nil, fmt.Errorf("failed to create cash register: %w", err)
	}
	return &register, nil
}

func (s *accountService) GetCashRegister(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	return s.accountRepo.FindCashRegisterByID(ctx, registerID)
}

func (s *accountService) ListCashRegisters(ctx context.Context) ([]domain.CashRegister, error) {
	return s.accountRepo.ListCashRegisters(ctx)
}
