package repository

//go:generate mockgen -destination=mocks/mock_fee_rule_repository.go -package=mock_repository . FeeRuleRepository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
)

// FeeRuleRepository defines the interface for fee rule data operations
type FeeRuleRepository interface {
	// GetByServiceType returns the shop's rule with slabs ordered by position, or nil if unconfigured
	GetByServiceType(ctx context.Context, shopID uuid.UUID, serviceType enum.ServiceType) (*entity.FeeRule, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.FeeRule, error)
	// Upsert creates or replaces the rule for (ShopID, ServiceType), slabs included
	Upsert(ctx context.Context, rule *entity.FeeRule) error
}
