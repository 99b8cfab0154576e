package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a shop owner, a shop worker or a platform administrator
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID     *uuid.UUID     `gorm:"type:uuid;index" json:"shop_id,omitempty"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	Role       enum.UserRole  `gorm:"size:30;not null;index" json:"role"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Shop *Shop `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// ShopIDOrNil returns the user's shop or uuid.Nil for platform administrators
func (u *User) ShopIDOrNil() uuid.UUID {
	if u.ShopID == nil {
		return uuid.Nil
	}
	return *u.ShopID
}
