package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a completed point-of-sale invoice
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID          `gorm:"type:uuid;not null;index:idx_sales_shop_date,priority:1" json:"shop_id"`
	InvoiceNo     string             `gorm:"size:50;not null;index" json:"invoice_no"`
	SaleDate      bizdate.Date       `gorm:"type:date;not null;index:idx_sales_shop_date,priority:2" json:"sale_date"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
