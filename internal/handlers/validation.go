package handlers

import (
	"reflect"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom rules used by request DTOs on gin's validator.
// decimal.Decimal fields are validated as float64 so gt/gte/required apply to amounts.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v.RegisterValidation("account_kind", validAccountKind)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validAccountKind(fl validator.FieldLevel) bool {
	return domain.AccountKind(fl.Field().String()).IsValid()
}
