package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// PaymentMethodTotal represents sales grouped by payment method
type PaymentMethodTotal struct {
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Count         int64              `json:"count"`
	Total         decimal.Decimal    `json:"total"`
}

// ServiceTypeTotal represents mobile service transactions grouped by service type
type ServiceTypeTotal struct {
	ServiceType   enum.ServiceType `json:"service_type"`
	Count         int64            `json:"count"`
	Amount        decimal.Decimal  `json:"amount"`
	Commission    decimal.Decimal  `json:"commission"`
	Discount      decimal.Decimal  `json:"discount"`
	NetCommission decimal.Decimal  `json:"net_commission"`
	LossCount     int64            `json:"loss_count"`
}

// SupplierTotal represents purchases grouped by supplier
type SupplierTotal struct {
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	PurchaseCount int64           `json:"purchase_count"`
	Purchased     decimal.Decimal `json:"purchased"`
	Paid          decimal.Decimal `json:"paid"`
}

// ReportRepository defines read-only rollups over a date range, both ends inclusive
type ReportRepository interface {
	SalesByPaymentMethod(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]PaymentMethodTotal, error)
	ServicesByType(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]ServiceTypeTotal, error)
	PurchasesBySupplier(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]SupplierTotal, error)
}
