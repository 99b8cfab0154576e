package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/infrastructure/cache"
)

type cachedFeeRuleRepository struct {
	inner domainRepo.FeeRuleRepository
	cache cache.FeeRuleCache
	ttl   time.Duration
}

// NewCachedFeeRuleRepository serves single-rule lookups from cache and drops
// the cached entry whenever the rule is written. Cache failures fall through
// to the wrapped repository.
func NewCachedFeeRuleRepository(inner domainRepo.FeeRuleRepository, c cache.FeeRuleCache, ttl time.Duration) domainRepo.FeeRuleRepository {
	return &cachedFeeRuleRepository{inner: inner, cache: c, ttl: ttl}
}

func (r *cachedFeeRuleRepository) GetByServiceType(ctx context.Context, shopID uuid.UUID, serviceType enum.ServiceType) (*entity.FeeRule, error) {
	key := cache.FeeRuleKey(shopID, serviceType)

	rule, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		log.Printf("Warning: fee rule cache get %s: %v", key, err)
	}
	if ok {
		return rule, nil
	}

	rule, err = r.inner.GetByServiceType(ctx, shopID, serviceType)
	if err != nil || rule == nil {
		return rule, err
	}
	if err := r.cache.Set(ctx, key, rule, r.ttl); err != nil {
		log.Printf("Warning: fee rule cache set %s: %v", key, err)
	}
	return rule, nil
}

func (r *cachedFeeRuleRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.FeeRule, error) {
	return r.inner.ListByShop(ctx, shopID)
}

func (r *cachedFeeRuleRepository) Upsert(ctx context.Context, rule *entity.FeeRule) error {
	if err := r.inner.Upsert(ctx, rule); err != nil {
		return err
	}
	key := cache.FeeRuleKey(rule.ShopID, rule.ServiceType)
	if err := r.cache.Delete(ctx, key); err != nil {
		log.Printf("Warning: fee rule cache invalidate %s: %v", key, err)
	}
	return nil
}
