package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop represents a retail outlet; every ledger row belongs to exactly one shop
type Shop struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   *uuid.UUID     `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Settings  ShopSettings   `gorm:"type:jsonb" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}

// ShopSettings holds per-shop display preferences
type ShopSettings struct {
	Currency      string `json:"currency,omitempty"`
	ReceiptHeader string `json:"receipt_header,omitempty"`
	ReceiptFooter string `json:"receipt_footer,omitempty"`
}

// Scan implements the sql.Scanner interface for ShopSettings
func (ss *ShopSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = ShopSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ShopSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for ShopSettings
func (ss ShopSettings) Value() (driver.Value, error) {
	b, err := json.Marshal(ss)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// DefaultShopSettings returns default settings for new shops
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		Currency:      "PKR",
		ReceiptFooter: "Shukriya! Visit again",
	}
}
