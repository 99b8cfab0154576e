package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
)

// FeeRuleCache stores fee rules keyed by shop and service type
type FeeRuleCache interface {
	Get(ctx context.Context, key string) (*entity.FeeRule, bool, error)
	Set(ctx context.Context, key string, rule *entity.FeeRule, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// FeeRuleKey builds the cache key of one shop's rule for a service type
func FeeRuleKey(shopID uuid.UUID, serviceType enum.ServiceType) string {
	return fmt.Sprintf("fee_rule:%s:%s", shopID, serviceType)
}

// NoopFeeRuleCache never holds anything; used when Redis is not configured or unreachable
type NoopFeeRuleCache struct{}

func (NoopFeeRuleCache) Get(_ context.Context, _ string) (*entity.FeeRule, bool, error) {
	return nil, false, nil
}

func (NoopFeeRuleCache) Set(_ context.Context, _ string, _ *entity.FeeRule, _ time.Duration) error {
	return nil
}

func (NoopFeeRuleCache) Delete(_ context.Context, _ ...string) error {
	return nil
}
