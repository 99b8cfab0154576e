package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest represents a create supplier request
type CreateSupplierRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}

// CreatePurchaseRequest records a stock purchase, optionally with an upfront payment
type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID          `json:"supplier_id" binding:"required"`
	PurchaseNo    string             `json:"purchase_no" binding:"max=100"`
	PurchaseDate  *bizdate.Date      `json:"purchase_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Notes         *string            `json:"notes"`
}

// SupplierPaymentRequest pays part of a purchase's outstanding amount
type SupplierPaymentRequest struct {
	Amount        decimal.Decimal    `json:"amount"`
	PaymentDate   *bizdate.Date      `json:"payment_date"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Notes         *string            `json:"notes"`
}
