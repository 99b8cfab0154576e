package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents a stock purchase from a supplier
type Purchase struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"shop_id"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	PurchaseNo   string              `gorm:"size:100;not null;index" json:"purchase_no"`
	PurchaseDate bizdate.Date        `gorm:"type:date;not null" json:"purchase_date"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	PaidAmount   decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"paid_amount"`
	Status       enum.PurchaseStatus `gorm:"default:0" json:"status"`
	Notes        *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy    uuid.UUID           `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`

	// Relationships
	Supplier *Supplier         `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Payments []SupplierPayment `gorm:"foreignKey:PurchaseID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// Outstanding is what is still owed to the supplier
func (p *Purchase) Outstanding() decimal.Decimal {
	return p.TotalAmount.Sub(p.PaidAmount)
}

// DeriveStatus sets Status from PaidAmount against TotalAmount
func (p *Purchase) DeriveStatus() {
	p.Status = PurchaseStatusFor(p.TotalAmount, p.PaidAmount)
}

// PurchaseStatusFor maps a paid amount against a total to a status
func PurchaseStatusFor(total, paid decimal.Decimal) enum.PurchaseStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return enum.PurchaseStatusUnpaid
	case paid.LessThan(total):
		return enum.PurchaseStatusPartial
	default:
		return enum.PurchaseStatusPaid
	}
}

// SupplierPayment is cash that left the shop for inventory on PaymentDate
type SupplierPayment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID          `gorm:"type:uuid;not null;index:idx_supplier_payments_shop_date,priority:1" json:"shop_id"`
	SupplierID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"supplier_id"`
	PurchaseID    *uuid.UUID         `gorm:"type:uuid;index" json:"purchase_id,omitempty"`
	Amount        decimal.Decimal    `gorm:"type:decimal(14,2);not null" json:"amount"`
	PaymentDate   bizdate.Date       `gorm:"type:date;not null;index:idx_supplier_payments_shop_date,priority:2" json:"payment_date"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null;default:'CASH'" json:"payment_method"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new supplier payment
func (p *SupplierPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SupplierPayment model
func (SupplierPayment) TableName() string {
	return "supplier_payments"
}
