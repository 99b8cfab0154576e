package service

import (
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the precision of every stored currency column (paisa)
const moneyPlaces = 2

// checkMoneyScale returns a field error when v carries fractions of a paisa
func checkMoneyScale(field string, v decimal.Decimal) *apperror.FieldError {
	if v.Equal(v.Round(moneyPlaces)) {
		return nil
	}
	return &apperror.FieldError{Field: field, Message: "Amount cannot have more than 2 decimal places"}
}

// checkOptionalMoneyScale is checkMoneyScale for an optional amount
func checkOptionalMoneyScale(field string, v *decimal.Decimal) *apperror.FieldError {
	if v == nil {
		return nil
	}
	return checkMoneyScale(field, *v)
}
