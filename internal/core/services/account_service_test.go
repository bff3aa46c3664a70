package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/core/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	accountRepo *MockAccountRepository
	service     portssvc.AccountSvcFacade
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.accountRepo)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.accountRepo.AssertExpectations(s.T())
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateBankAccount() {
	balanceDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.accountRepo.On("SaveBankAccount", s.ctx, mock.MatchedBy(func(a domain.BankAccount) bool {
		return a.Kind == domain.KindBankAccount &&
			a.Name == "Banco Nación" &&
			a.CurrencyCode == "ARS" &&
			a.Status == domain.StatusActive &&
			a.BalanceDate.Equal(balanceDate) &&
			dec("1000").Equal(a.InitialBalance) &&
			a.CreatedBy == "user-1"
	})).Return(nil).Once()

	account, err := s.service.CreateBankAccount(s.ctx, dto.CreateBankAccountRequest{
		Name:           "  Banco Nación ",
		BankName:       "BNA",
		AccountNumber:  "0110-1234",
		CurrencyCode:   "ars",
		InitialBalance: dec("1000"),
		BalanceDate:    &balanceDate,
	}, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal("BNA", account.BankName)
}

func (s *AccountServiceTestSuite) TestCreateSafeBox_BlankName() {
	_, err := s.service.CreateSafeBox(s.ctx, dto.CreateSafeBoxRequest{Name: "   ", CurrencyCode: "ARS"}, "user-1")
	s.ErrorIs(err, services.ErrMissingRequiredField)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestUpdateSafeBox() {
	s.accountRepo.On("FindSafeBoxByID", s.ctx, "safe-1").Return(&domain.SafeBox{
		Account:  *activeAccount(domain.KindSafeBox, "safe-1", "ARS", 0),
		Location: "back office",
	}, nil).Once()
	s.accountRepo.On("UpdateSafeBox", s.ctx, mock.MatchedBy(func(b domain.SafeBox) bool {
		return b.Location == "vault" && b.Name == "safe-1" && b.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	location := "vault"
	box, err := s.service.UpdateSafeBox(s.ctx, "safe-1", dto.UpdateSafeBoxRequest{Location: &location}, "user-2")

	s.Require().NoError(err)
	s.Equal("vault", box.Location)
}

func (s *AccountServiceTestSuite) TestArchiveAccount() {
	s.accountRepo.On("FindAccountByID", s.ctx, domain.KindBankAccount, "bank-1").
		Return(activeAccount(domain.KindBankAccount, "bank-1", "ARS", 0), nil).Once()
	s.accountRepo.On("UpdateAccountStatus", s.ctx, domain.KindBankAccount, "bank-1", domain.StatusArchived, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := s.service.ArchiveAccount(s.ctx, domain.KindBankAccount, "bank-1", "user-1")

	s.NoError(err)
}

func (s *AccountServiceTestSuite) TestArchiveAccount_AlreadyArchived() {
	archived := activeAccount(domain.KindSafeBox, "safe-1", "ARS", 0)
	archived.Status = domain.StatusArchived
	s.accountRepo.On("FindAccountByID", s.ctx, domain.KindSafeBox, "safe-1").Return(archived, nil).Once()

	err := s.service.ArchiveAccount(s.ctx, domain.KindSafeBox, "safe-1", "user-1")

	s.ErrorIs(err, services.ErrAccountAlreadyArchived)
}

func (s *AccountServiceTestSuite) TestRestoreAccount_NotArchived() {
	s.accountRepo.On("FindAccountByID", s.ctx, domain.KindSafeBox, "safe-1").
		Return(activeAccount(domain.KindSafeBox, "safe-1", "ARS", 0), nil).Once()

	err := s.service.RestoreAccount(s.ctx, domain.KindSafeBox, "safe-1", "user-1")

	s.ErrorIs(err, services.ErrAccountNotArchived)
}

func (s *AccountServiceTestSuite) TestArchiveAccount_CashRegisterRejected() {
	err := s.service.ArchiveAccount(s.ctx, domain.KindCashRegister, "reg-1", "user-1")
	s.ErrorIs(err, services.ErrBalanceKindRequired)
}

func (s *AccountServiceTestSuite) TestCreateCashRegister() {
	s.accountRepo.On("SaveCashRegister", s.ctx, mock.MatchedBy(func(r domain.CashRegister) bool {
		return r.Name == "Caja 1" && r.CurrencyCode == "ARS" && r.IsActive
	})).Return(nil).Once()

	register, err := s.service.CreateCashRegister(s.ctx, dto.CreateCashRegisterRequest{Name: "Caja 1", CurrencyCode: "ARS"}, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(register.CashRegisterID)
}

func (s *AccountServiceTestSuite) TestListBankAccounts_PassesArchivedFlag() {
	s.accountRepo.On("ListBankAccounts", s.ctx, true).Return([]domain.BankAccount{}, nil).Once()

	accounts, err := s.service.ListBankAccounts(s.ctx, dto.ListAccountsParams{IncludeArchived: true})

	s.NoError(err)
	s.Empty(accounts)
}

func (s *AccountServiceTestSuite) TestCreateBankAccount_InitialBalanceBeyondColumnScale() {
	_, err := s.service.CreateBankAccount(s.ctx, dto.CreateBankAccountRequest{
		Name: "Banco Nación", CurrencyCode: "ARS", InitialBalance: dec("10.00001"),
	}, "user-1")

	s.ErrorIs(err, services.ErrAmountScale)
	s.accountRepo.AssertNotCalled(s.T(), "SaveBankAccount", mock.Anything, mock.Anything)
}
