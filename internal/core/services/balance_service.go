package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService folds initial balances and movement history into current balances.
// Nothing is cached; every call reads the ledger.
type balanceService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	movementRepo portsrepo.MovementReader
	shiftSvc     portssvc.ShiftReaderSvc
}

// NewBalanceService creates a new balance service.
func NewBalanceService(accountRepo portsrepo.AccountReader, movementRepo portsrepo.MovementReader, shiftSvc portssvc.ShiftReaderSvc) portssvc.BalanceSvc {
	return &balanceService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		shiftSvc:     shiftSvc,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) GetBalance(ctx context.Context, kind domain.AccountKind, accountID string) (decimal.Decimal, error) {
	switch kind {
	case domain.KindCashRegister:
		shift, err := s.shiftSvc.GetOpenShift(ctx, accountID)
		if err != nil {
			return decimal.Zero, err
		}
		summary, err := s.shiftSvc.GetShiftSummary(ctx, shift.ShiftID)
		if err != nil {
			return decimal.Zero, err
		}
		return summary.CurrentCashAmount, nil
	case domain.KindBankAccount, domain.KindSafeBox:
		balances, err := s.GetBalances(ctx, kind, []string{accountID})
		if err != nil {
			return decimal.Zero, err
		}
		return balances[accountID], nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAccountKind, kind)
}

func (s *balanceService) GetBalances(ctx context.Context, kind domain.AccountKind, accountIDs []string) (map[string]decimal.Decimal, error) {
	ledger, ok := domain.LedgerKindFor(kind)
	if !ok {
		return nil, ErrBalanceKindRequired
	}
	ids := uniqueIDs(accountIDs)
	if len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	initial, err := s.accountRepo.FindInitialBalances(ctx, kind, ids)
	if err != nil {
		return nil, err
	}
	movements, err := s.movementRepo.ListMovementsByAccounts(ctx, ledger, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load movements for balances",
			slog.String("kind", string(kind)),
			slog.Int("account_count", len(ids)))
		return nil, err
	}
	return accounting.FoldBalances(initial, movements), nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
