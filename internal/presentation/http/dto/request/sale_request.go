package request

import (
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest records a POS sale
type CreateSaleRequest struct {
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	SaleDate      *bizdate.Date      `json:"sale_date"`
	InvoiceNo     string             `json:"invoice_no" binding:"max=50"`
	CustomerName  *string            `json:"customer_name" binding:"omitempty,max=255"`
	Notes         *string            `json:"notes"`
}
