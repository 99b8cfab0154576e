package request

import (
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest represents a create loan request
type CreateLoanRequest struct {
	CustomerName      string          `json:"customer_name" binding:"required,max=255"`
	CustomerPhone     *string         `json:"customer_phone" binding:"omitempty,max=50"`
	PrincipalAmount   decimal.Decimal `json:"principal_amount"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	TotalInstallments int             `json:"total_installments" binding:"required,min=1"`
	StartDate         *bizdate.Date   `json:"start_date"`
	Notes             *string         `json:"notes"`
}

// InstallmentPaymentRequest represents a repayment against one installment
type InstallmentPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
