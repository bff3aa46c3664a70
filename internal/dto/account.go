package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=120"`
	BankName       string          `json:"bankName" binding:"max=120"`
	AccountNumber  string          `json:"accountNumber" binding:"max=64"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,iso4217"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	BalanceDate    *time.Time      `json:"balanceDate"` // Optional, defaults to creation time
}

// UpdateBankAccountRequest defines the descriptive fields that may change.
type UpdateBankAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=120"`
	BankName      *string `json:"bankName" binding:"omitempty,max=120"`
	AccountNumber *string `json:"accountNumber" binding:"omitempty,max=64"`
}

// CreateSafeBoxRequest defines the data needed to register a safe box.
type CreateSafeBoxRequest struct {
	Name           string          `json:"name" binding:"required,max=120"`
	Location       string          `json:"location" binding:"max=120"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,iso4217"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	BalanceDate    *time.Time      `json:"balanceDate"`
}

// UpdateSafeBoxRequest defines the descriptive fields that may change.
type UpdateSafeBoxRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=120"`
	Location *string `json:"location" binding:"omitempty,max=120"`
}

// CreateCashRegisterRequest defines the data needed to register a cash register.
type CreateCashRegisterRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	CurrencyCode string `json:"currencyCode" binding:"required,iso4217"`
	Location     string `json:"location" binding:"max=120"`
}

// ListAccountsParams defines query parameters for listing bank accounts and safe boxes.
type ListAccountsParams struct {
	IncludeArchived bool `form:"includeArchived"`
}

// AccountResponse defines the data shared by bank account and safe box responses.
type AccountResponse struct {
	AccountID      string               `json:"accountID"`
	Kind           domain.AccountKind   `json:"kind"`
	Name           string               `json:"name"`
	CurrencyCode   string               `json:"currencyCode"`
	InitialBalance decimal.Decimal      `json:"initialBalance"`
	BalanceDate    time.Time            `json:"balanceDate"`
	Status         domain.AccountStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy  string               `json:"lastUpdatedBy"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	AccountResponse
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// SafeBoxResponse defines the data returned for a safe box.
type SafeBoxResponse struct {
	AccountResponse
	Location string `json:"location"`
}

// CashRegisterResponse defines the data returned for a cash register.
type CashRegisterResponse struct {
	CashRegisterID string    `json:"cashRegisterID"`
	Name           string    `json:"name"`
	CurrencyCode   string    `json:"currencyCode"`
	Location       string    `json:"location"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

func toAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Kind:           a.Kind,
		Name:           a.Name,
		CurrencyCode:   a.CurrencyCode,
		InitialBalance: a.InitialBalance,
		BalanceDate:    a.BalanceDate,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
		LastUpdatedAt:  a.LastUpdatedAt,
		LastUpdatedBy:  a.LastUpdatedBy,
	}
}

// ToBankAccountResponse converts a domain.BankAccount to its response DTO
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		AccountResponse: toAccountResponse(a.Account),
		BankName:        a.BankName,
		AccountNumber:   a.AccountNumber,
	}
}

// ToListBankAccountResponse converts a slice of domain.BankAccount to response DTOs
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}

// ToSafeBoxResponse converts a domain.SafeBox to its response DTO
func ToSafeBoxResponse(b *domain.SafeBox) SafeBoxResponse {
	return SafeBoxResponse{
		AccountResponse: toAccountResponse(b.Account),
		Location:        b.Location,
	}
}

// ToListSafeBoxResponse converts a slice of domain.SafeBox to response DTOs
func ToListSafeBoxResponse(boxes []domain.SafeBox) []SafeBoxResponse {
	res := make([]SafeBoxResponse, len(boxes))
	for i := range boxes {
		res[i] = ToSafeBoxResponse(&boxes[i])
	}
	return res
}

// ToCashRegisterResponse converts a domain.CashRegister to its response DTO
func ToCashRegisterResponse(r *domain.CashRegister) CashRegisterResponse {
	return CashRegisterResponse{
		CashRegisterID: r.CashRegisterID,
		Name:           r.Name,
		CurrencyCode:   r.CurrencyCode,
		Location:       r.Location,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
	}
}

// ToListCashRegisterResponse converts a slice of domain.CashRegister to response DTOs
func ToListCashRegisterResponse(registers []domain.CashRegister) []CashRegisterResponse {
	res := make([]CashRegisterResponse, len(registers))
	for i := range registers {
		res[i] = ToCashRegisterResponse(&registers[i])
	}
	return res
}
