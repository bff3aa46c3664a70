package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:      d.AccountID,
		Name:           d.Name,
		BankName:       d.BankName,
		AccountNumber:  d.AccountNumber,
		CurrencyCode:   d.CurrencyCode,
		InitialBalance: d.InitialBalance,
		BalanceDate:    d.BalanceDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		Account: domain.Account{
			AccountID:      m.AccountID,
			Kind:           domain.KindBankAccount,
			Name:           m.Name,
			CurrencyCode:   m.CurrencyCode,
			InitialBalance: m.InitialBalance,
			BalanceDate:    m.BalanceDate,
			Status:         domain.AccountStatus(m.Status),
			AuditFields:    ToDomainAuditFields(m.AuditFields),
		},
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}

// ToModelSafeBox converts a domain SafeBox to a model SafeBox
func ToModelSafeBox(d domain.SafeBox) models.SafeBox {
	return models.SafeBox{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Location:       d.Location,
		CurrencyCode:   d.CurrencyCode,
		InitialBalance: d.InitialBalance,
		BalanceDate:    d.BalanceDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSafeBox converts a model SafeBox to a domain SafeBox
func ToDomainSafeBox(m models.SafeBox) domain.SafeBox {
	return domain.SafeBox{
		Account: domain.Account{
			AccountID:      m.AccountID,
			Kind:           domain.KindSafeBox,
			Name:           m.Name,
			CurrencyCode:   m.CurrencyCode,
			InitialBalance: m.InitialBalance,
			BalanceDate:    m.BalanceDate,
			Status:         domain.AccountStatus(m.Status),
			AuditFields:    ToDomainAuditFields(m.AuditFields),
		},
		Location: m.Location,
	}
}

// ToDomainSafeBoxSlice converts a slice of model SafeBoxes to domain SafeBoxes
func ToDomainSafeBoxSlice(ms []models.SafeBox) []domain.SafeBox {
	ds := make([]domain.SafeBox, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSafeBox(m)
	}
	return ds
}

// ToModelCashRegister converts a domain CashRegister to a model CashRegister
func ToModelCashRegister(d domain.CashRegister) models.CashRegister {
	return models.CashRegister{
		CashRegisterID: d.CashRegisterID,
		Name:           d.Name,
		CurrencyCode:   d.CurrencyCode,
		Location:       d.Location,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashRegister converts a model CashRegister to a domain CashRegister
func ToDomainCashRegister(m models.CashRegister) domain.CashRegister {
	return domain.CashRegister{
		CashRegisterID: m.CashRegisterID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		Location:       m.Location,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
