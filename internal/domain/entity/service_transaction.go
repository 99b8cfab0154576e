package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceTransaction represents one mobile-money, load, bank transfer or bill
// payment performed at the counter, with the commission the shop earned on it.
// Rows are hard deleted; there is no soft-delete column.
type ServiceTransaction struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ShopID          uuid.UUID              `gorm:"type:uuid;not null;index:idx_service_tx_shop_date,priority:1" json:"shop_id"`
	ServiceType     enum.ServiceType       `gorm:"size:30;not null;index" json:"service_type"`
	LoadProvider    *enum.LoadProvider     `gorm:"size:20" json:"load_provider,omitempty"`
	Amount          decimal.Decimal        `gorm:"type:decimal(14,2);not null" json:"amount"`
	CommissionRate  decimal.Decimal        `gorm:"type:decimal(10,4);not null;default:0" json:"commission_rate"`
	CommissionMode  enum.CommissionMode    `gorm:"size:20;not null" json:"commission_mode"`
	Commission      decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0" json:"commission"`
	Discount        decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0" json:"discount"`
	NetCommission   decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0" json:"net_commission"`
	Status          enum.TransactionStatus `gorm:"size:20;not null;default:'COMPLETED'" json:"status"`
	TransactionDate bizdate.Date           `gorm:"type:date;not null;index:idx_service_tx_shop_date,priority:2" json:"transaction_date"`
	CustomerName    *string                `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone   *string                `gorm:"size:50" json:"customer_phone,omitempty"`
	ReferenceID     *string                `gorm:"size:100" json:"reference_id,omitempty"`
	Notes           *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       uuid.UUID              `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *ServiceTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceTransaction model
func (ServiceTransaction) TableName() string {
	return "service_transactions"
}

// DeriveNetCommission sets NetCommission from Commission and Discount.
// The result is not clamped: a discount larger than the commission is a loss.
func (t *ServiceTransaction) DeriveNetCommission() {
	t.NetCommission = t.Commission.Sub(t.Discount)
}

// IsLoss reports whether the discount exceeded the commission
func (t *ServiceTransaction) IsLoss() bool {
	return t.NetCommission.IsNegative()
}
