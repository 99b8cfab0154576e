package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeeRule is a shop's commission policy for one service type.
//
// Exactly one branch is authoritative when a commission is resolved:
// slabs when UseSlabs is set and slabs exist, otherwise a percentage of the
// amount when IsPercentage is set, otherwise Rate per thousand units.
type FeeRule struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_fee_rules_shop_service,priority:1" json:"shop_id"`
	ServiceType  enum.ServiceType `gorm:"size:30;not null;uniqueIndex:idx_fee_rules_shop_service,priority:2" json:"service_type"`
	IsPercentage bool             `gorm:"not null;default:false" json:"is_percentage"`
	Rate         decimal.Decimal  `gorm:"type:decimal(10,4);not null;default:0" json:"rate"`
	UseSlabs     bool             `gorm:"not null;default:false" json:"use_slabs"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	Slabs []FeeSlab `gorm:"foreignKey:FeeRuleID;constraint:OnDelete:CASCADE" json:"slabs"`
}

// BeforeCreate generates a UUID before creating a new fee rule
func (r *FeeRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeeRule model
func (FeeRule) TableName() string {
	return "fee_rules"
}

// Mode returns the branch the resolver will take for this rule
func (r *FeeRule) Mode() enum.CommissionMode {
	switch {
	case r.UseSlabs && len(r.Slabs) > 0:
		return enum.CommissionModeSlab
	case r.IsPercentage:
		return enum.CommissionModePercentage
	default:
		return enum.CommissionModeFlat
	}
}

// FeeSlab is one band of a slab fee table: amounts in [MinAmount, MaxAmount] pay Fee
type FeeSlab struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FeeRuleID uuid.UUID       `gorm:"type:uuid;not null;index" json:"fee_rule_id"`
	Position  int             `gorm:"not null" json:"position"`
	MinAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"min_amount"`
	MaxAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"max_amount"`
	Fee       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"fee"`
}

// BeforeCreate generates a UUID before creating a new slab
func (s *FeeSlab) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeeSlab model
func (FeeSlab) TableName() string {
	return "fee_slabs"
}

// Contains reports whether amount falls inside the slab, bounds inclusive
func (s FeeSlab) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(s.MinAmount) && amount.LessThanOrEqual(s.MaxAmount)
}
