package service

import (
	"log"
	"sort"

	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// CommissionQuote is the resolver's suggestion for one transaction
type CommissionQuote struct {
	Commission decimal.Decimal     `json:"commission"`
	Rate       decimal.Decimal     `json:"rate"`
	Mode       enum.CommissionMode `json:"mode"`
	// SlabMatched is false when a slab rule had no band covering the amount
	SlabMatched bool `json:"slab_matched"`
}

// ResolveCommission computes the commission a fee rule charges on amount.
//
// Slab rules return the fee of the first slab, by position, whose
// [MinAmount, MaxAmount] contains amount, or zero when none does. Percentage
// rules charge amount*rate/100 and flat rules charge rate per thousand.
// A nil rule charges nothing. Results are rounded to paisa.
func ResolveCommission(serviceType enum.ServiceType, amount decimal.Decimal, rule *entity.FeeRule) CommissionQuote {
	if rule == nil {
		log.Printf("Warning: no fee rule configured for %s, commission is 0", serviceType)
		return CommissionQuote{Commission: decimal.Zero, Rate: decimal.Zero, Mode: enum.CommissionModeNone}
	}

	switch rule.Mode() {
	case enum.CommissionModeSlab:
		slabs := make([]entity.FeeSlab, len(rule.Slabs))
		copy(slabs, rule.Slabs)
		sort.SliceStable(slabs, func(i, j int) bool { return slabs[i].Position < slabs[j].Position })

		for _, slab := range slabs {
			if slab.Contains(amount) {
				return CommissionQuote{
					Commission:  slab.Fee.Round(2),
					Rate:        decimal.Zero,
					Mode:        enum.CommissionModeSlab,
					SlabMatched: true,
				}
			}
		}
		log.Printf("Warning: amount %s matches no %s slab of shop %s, commission is 0", amount, serviceType, rule.ShopID)
		return CommissionQuote{Commission: decimal.Zero, Rate: decimal.Zero, Mode: enum.CommissionModeSlab}

	case enum.CommissionModePercentage:
		return CommissionQuote{
			Commission: amount.Mul(rule.Rate).Div(hundred).Round(2),
			Rate:       rule.Rate,
			Mode:       enum.CommissionModePercentage,
		}

	default:
		return CommissionQuote{
			Commission: amount.Mul(rule.Rate).Div(thousand).Round(2),
			Rate:       rule.Rate,
			Mode:       enum.CommissionModeFlat,
		}
	}
}
