package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSalesLedgerRepository reads the sales subsystem's tables. It never writes.
type PgxSalesLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxSalesLedgerRepository creates a read-only view over sales and sale_payments.
func newPgxSalesLedgerRepository(pool *pgxpool.Pool) portsrepo.SalesLedgerReader {
	return &PgxSalesLedgerRepository{pool: pool}
}

var _ portsrepo.SalesLedgerReader = (*PgxSalesLedgerRepository)(nil)

const (
	completedSalesQuery = `
		SELECT sale_id, shift_id, total, voucher_type
		FROM sales
		WHERE shift_id = $1 AND status = 'completed'
		ORDER BY sold_at, sale_id;
	`
	completedSalePaymentsQuery = `
		SELECT p.sale_id, p.method_name, p.amount
		FROM sale_payments p
		JOIN sales s ON s.sale_id = p.sale_id
		WHERE s.shift_id = $1 AND s.status = 'completed';
	`
)

// ListCompletedSalesByShift fetches the completed sales of a shift and their payments in one round trip.
func (r *PgxSalesLedgerRepository) ListCompletedSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	batch := &pgx.Batch{}
	batch.Queue(completedSalesQuery, shiftID)
	batch.Queue(completedSalePaymentsQuery, shiftID)

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	rows, err := br.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query sales of shift %s: %w", shiftID, err)
	}
	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.SaleID, &s.ShiftID, &s.Total, &s.VoucherType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	payRows, err := br.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query sale payments of shift %s: %w", shiftID, err)
	}
	var payments []models.SalePayment
	for payRows.Next() {
		var p models.SalePayment
		if err := payRows.Scan(&p.SaleID, &p.MethodName, &p.Amount); err != nil {
			payRows.Close()
			return nil, fmt.Errorf("failed to scan sale payment row: %w", err)
		}
		payments = append(payments, p)
	}
	payRows.Close()
	if err := payRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale payment rows: %w", err)
	}

	if len(sales) == 0 {
		return []domain.Sale{}, nil
	}
	return mapping.ToDomainSales(sales, payments), nil
}
