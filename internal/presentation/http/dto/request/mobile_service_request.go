package request

import (
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// CreateMobileServiceRequest records a counter transaction. Omit commission
// (or send null) to have it computed from the shop's fee rule.
type CreateMobileServiceRequest struct {
	ServiceType     enum.ServiceType        `json:"service_type" binding:"required"`
	LoadProvider    *enum.LoadProvider      `json:"load_provider"`
	Amount          decimal.Decimal         `json:"amount"`
	Discount        decimal.Decimal         `json:"discount"`
	Commission      *decimal.Decimal        `json:"commission"`
	Status          *enum.TransactionStatus `json:"status"`
	TransactionDate *bizdate.Date           `json:"transaction_date"`
	CustomerName    *string                 `json:"customer_name" binding:"omitempty,max=255"`
	CustomerPhone   *string                 `json:"customer_phone" binding:"omitempty,max=50"`
	ReferenceID     *string                 `json:"reference_id" binding:"omitempty,max=100"`
	Notes           *string                 `json:"notes"`
}

// UpdateMobileServiceRequest is a partial update; omitted fields are unchanged
type UpdateMobileServiceRequest struct {
	Amount        *decimal.Decimal        `json:"amount"`
	Discount      *decimal.Decimal        `json:"discount"`
	Commission    *decimal.Decimal        `json:"commission"`
	LoadProvider  *enum.LoadProvider      `json:"load_provider"`
	Status        *enum.TransactionStatus `json:"status"`
	CustomerName  *string                 `json:"customer_name" binding:"omitempty,max=255"`
	CustomerPhone *string                 `json:"customer_phone" binding:"omitempty,max=50"`
	ReferenceID   *string                 `json:"reference_id" binding:"omitempty,max=100"`
	Notes         *string                 `json:"notes"`
}
