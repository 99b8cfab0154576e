package request

import "github.com/shopspring/decimal"

// FeeSlabRequest is one band of a slab table
type FeeSlabRequest struct {
	MinAmount decimal.Decimal `json:"min_amount"`
	MaxAmount decimal.Decimal `json:"max_amount"`
	Fee       decimal.Decimal `json:"fee"`
}

// UpsertFeeRuleRequest replaces the rule of the service type in the path
type UpsertFeeRuleRequest struct {
	IsPercentage bool             `json:"is_percentage"`
	Rate         decimal.Decimal  `json:"rate"`
	UseSlabs     bool             `json:"use_slabs"`
	Slabs        []FeeSlabRequest `json:"slabs" binding:"omitempty,dive"`
}
