package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money columns are NUMERIC(19, 4): four fractional digits and fifteen integer digits.
const (
	amountScale         = 4
	amountIntegerDigits = 15
)

var amountLimit = decimal.New(1, amountIntegerDigits)

// checkAmountFits rejects amounts the money columns would round or overflow.
func checkAmountFits(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(amountScale)) {
		return fmt.Errorf("%w: %s", ErrAmountScale, amount)
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount)
	}
	return nil
}

func validatePositiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return checkAmountFits(amount)
}

func validateNonNegativeAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}
	return checkAmountFits(amount)
}
