package services

import (
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)

	// Shift service first: balances and transfers reach cash registers through it.
	container.Shift = NewShiftService(
		repos.AccountRepo,
		repos.ShiftRepo,
		repos.MovementRepo,
		repos.SalesLedger,
		WithShiftCalculator(accounting.NewShiftCalculator(cfg.CashPaymentMethod, cfg.CreditNoteVoucherTypes)),
	)

	container.Balance = NewBalanceService(repos.AccountRepo, repos.MovementRepo, container.Shift)
	container.Transfer = NewTransferService(repos.AccountRepo, repos.ShiftRepo, repos.MovementRepo, container.Shift)
	container.Movement = NewMovementService(repos.MovementRepo, repos.AccountRepo, repos.ShiftRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.ShiftSvcFacade    = (*shiftService)(nil)
	_ portssvc.BalanceSvc        = (*balanceService)(nil)
	_ portssvc.TransferSvc       = (*transferService)(nil)
	_ portssvc.MovementSvcFacade = (*movementService)(nil)
)
