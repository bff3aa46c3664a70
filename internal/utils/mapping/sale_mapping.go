package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToDomainSales joins sale rows with their payment rows.
// Sales without payments get an empty breakdown.
func ToDomainSales(sales []models.Sale, payments []models.SalePayment) []domain.Sale {
	bySale := make(map[string][]domain.SalePayment, len(sales))
	for _, p := range payments {
		bySale[p.SaleID] = append(bySale[p.SaleID], domain.SalePayment{
			MethodName: p.MethodName,
			Amount:     p.Amount,
		})
	}

	ds := make([]domain.Sale, len(sales))
	for i, s := range sales {
		ds[i] = domain.Sale{
			SaleID:      s.SaleID,
			ShiftID:     s.ShiftID,
			Total:       s.Total,
			VoucherType: s.VoucherType,
			Payments:    bySale[s.SaleID],
		}
	}
	return ds
}
