package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:   d.MovementID,
		LedgerKind:   string(d.LedgerKind),
		AccountID:    d.AccountID,
		MovementType: string(d.MovementType),
		Amount:       d.Amount,
		Reference:    d.Reference,
		Description:  d.Description,
		SourceType:   string(d.SourceType),
		SourceID:     d.SourceID,
		PerformedBy:  d.PerformedBy,
		MovementDate: d.MovementDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:   m.MovementID,
		LedgerKind:   domain.LedgerKind(m.LedgerKind),
		AccountID:    m.AccountID,
		MovementType: domain.MovementType(m.MovementType),
		Amount:       m.Amount,
		Reference:    m.Reference,
		Description:  m.Description,
		SourceType:   domain.SourceType(m.SourceType),
		SourceID:     m.SourceID,
		PerformedBy:  m.PerformedBy,
		MovementDate: m.MovementDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
