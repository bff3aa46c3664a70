package services

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
)

var (
	ErrAmountNotPositive    = fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	ErrAmountNegative       = fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	ErrAmountScale          = fmt.Errorf("%w: amount has more than 4 decimal places", apperrors.ErrValidation)
	ErrAmountOutOfRange     = fmt.Errorf("%w: amount exceeds the supported range", apperrors.ErrValidation)
	ErrLeftInCashTooLarge   = fmt.Errorf("%w: left in cash cannot exceed the counted amount", apperrors.ErrValidation)
	ErrSameAccount          = fmt.Errorf("%w: source and destination must be different accounts", apperrors.ErrValidation)
	ErrCurrencyMismatch     = fmt.Errorf("%w: source and destination currencies differ", apperrors.ErrValidation)
	ErrInvalidAccountKind   = fmt.Errorf("%w: unknown account type", apperrors.ErrValidation)
	ErrBalanceKindRequired  = fmt.Errorf("%w: account type must be bank_account or safe_box", apperrors.ErrValidation)
	ErrMovementTypeInvalid  = fmt.Errorf("%w: movement type not allowed for this account type", apperrors.ErrValidation)
	ErrMovementKindMismatch = fmt.Errorf("%w: movement does not belong to this account type", apperrors.ErrValidation)
	ErrMissingRequiredField = fmt.Errorf("%w: missing required field", apperrors.ErrValidation)

	ErrAccountArchived        = fmt.Errorf("%w: account is archived", apperrors.ErrConflict)
	ErrAccountAlreadyArchived = fmt.Errorf("%w: account is already archived", apperrors.ErrConflict)
	ErrAccountNotArchived     = fmt.Errorf("%w: account is not archived", apperrors.ErrConflict)
	ErrCashRegisterInactive   = fmt.Errorf("%w: cash register is inactive", apperrors.ErrConflict)
	ErrRegisterNoOpenShift    = fmt.Errorf("%w: register has no open shift", apperrors.ErrConflict)
	ErrShiftAlreadyOpen       = fmt.Errorf("%w: shift already open", apperrors.ErrConflict)
	ErrShiftNotOpen           = fmt.Errorf("%w: shift is not open", apperrors.ErrConflict)
	ErrShiftAlreadyClosed     = fmt.Errorf("%w: shift already closed", apperrors.ErrConflict)

	ErrOnlyManualUpdate = fmt.Errorf("%w: only manual movements can be updated", apperrors.ErrForbidden)
	ErrOnlyManualDelete = fmt.Errorf("%w: only manual movements can be deleted", apperrors.ErrForbidden)
)
