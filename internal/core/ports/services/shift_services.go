package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// ShiftReaderSvc defines read operations for cash-register shifts.
type ShiftReaderSvc interface {
	GetShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// GetOpenShift returns the open shift of a register, or an error wrapping ErrConflict when none is open.
	GetOpenShift(ctx context.Context, registerID string) (*domain.Shift, error)

	// GetLastClosedShift returns the most recently closed shift of a register, or nil when there is none.
	GetLastClosedShift(ctx context.Context, registerID string) (*domain.Shift, error)

	ListShifts(ctx context.Context, registerID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error)

	// GetShiftSummary derives the cash position of a shift from its sales and movements.
	GetShiftSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error)
}

// ShiftWriterSvc defines the shift lifecycle.
type ShiftWriterSvc interface {
	OpenShift(ctx context.Context, registerID string, req dto.OpenShiftRequest, userID string) (*domain.Shift, error)
	AddCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error)
	RemoveCash(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error)

	// CloseShift reconciles counted cash against the expected amount. Closing is terminal.
	CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
