package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// FeeRuleService manages a shop's commission policies
type FeeRuleService struct {
	feeRuleRepo repository.FeeRuleRepository
}

// NewFeeRuleService creates a new fee rule service
func NewFeeRuleService(feeRuleRepo repository.FeeRuleRepository) *FeeRuleService {
	return &FeeRuleService{feeRuleRepo: feeRuleRepo}
}

// FeeSlabInput is one band of a slab table
type FeeSlabInput struct {
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Fee       decimal.Decimal
}

// UpsertFeeRuleInput represents the fee rule settings for one service type
type UpsertFeeRuleInput struct {
	ServiceType  enum.ServiceType
	IsPercentage bool
	Rate         decimal.Decimal
	UseSlabs     bool
	Slabs        []FeeSlabInput
}

// List returns every configured rule of the shop
func (s *FeeRuleService) List(ctx context.Context, actor Actor, shopID uuid.UUID) ([]entity.FeeRule, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	return s.feeRuleRepo.ListByShop(ctx, shopID)
}

// Upsert creates or replaces the shop's rule for a service type
func (s *FeeRuleService) Upsert(ctx context.Context, actor Actor, shopID uuid.UUID, input *UpsertFeeRuleInput) (*entity.FeeRule, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if err := requireOwner(actor, "change fee rules"); err != nil {
		return nil, err
	}
	if err := validateFeeRule(input); err != nil {
		return nil, err
	}

	rule := &entity.FeeRule{
		ShopID:       shopID,
		ServiceType:  input.ServiceType,
		IsPercentage: input.IsPercentage,
		Rate:         input.Rate,
		UseSlabs:     input.UseSlabs,
	}
	for i, slab := range input.Slabs {
		rule.Slabs = append(rule.Slabs, entity.FeeSlab{
			Position:  i,
			MinAmount: slab.MinAmount,
			MaxAmount: slab.MaxAmount,
			Fee:       slab.Fee,
		})
	}

	if err := s.feeRuleRepo.Upsert(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func validateFeeRule(input *UpsertFeeRuleInput) error {
	var fieldErrors []apperror.FieldError

	if !input.ServiceType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "service_type", Message: "Unknown service type"})
	}
	if input.Rate.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "rate", Message: "Rate cannot be negative"})
	}
	if input.IsPercentage && input.Rate.GreaterThan(hundred) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "rate", Message: "Percentage rate cannot exceed 100"})
	}
	if input.UseSlabs && len(input.Slabs) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "slabs", Message: "At least one slab is required when slabs are enabled"})
	}

	for i, slab := range input.Slabs {
		field := fmt.Sprintf("slabs[%d]", i)
		if slab.MinAmount.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".min_amount", Message: "Minimum cannot be negative"})
		}
		if slab.MinAmount.GreaterThan(slab.MaxAmount) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".max_amount", Message: "Maximum must not be below minimum"})
		}
		if slab.Fee.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".fee", Message: "Fee cannot be negative"})
		}
	}

	// Bands are inclusive on both ends, so touching bounds overlap
	sorted := make([]FeeSlabInput, len(input.Slabs))
	copy(sorted, input.Slabs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinAmount.LessThan(sorted[j].MinAmount) })
	for i := 1; i < len(sorted); i++ {
		if !sorted[i].MinAmount.GreaterThan(sorted[i-1].MaxAmount) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "slabs",
				Message: fmt.Sprintf("Slab starting at %s overlaps the slab ending at %s", sorted[i].MinAmount, sorted[i-1].MaxAmount),
			})
			break
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
