package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/sangkips/shopledger-api/internal/domain/entity"
)

// RedisFeeRuleCache keeps fee rules in Redis as JSON values
type RedisFeeRuleCache struct {
	client *redis.Client
}

// NewRedisFeeRuleCache creates a client for addr. It does not connect until first use; call Ping to check.
func NewRedisFeeRuleCache(addr string, password string, db int) *RedisFeeRuleCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisFeeRuleCache{client: client}
}

func (c *RedisFeeRuleCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisFeeRuleCache) Close() error {
	return c.client.Close()
}

func (c *RedisFeeRuleCache) Get(ctx context.Context, key string) (*entity.FeeRule, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rule entity.FeeRule
	if err := json.Unmarshal([]byte(val), &rule); err != nil {
		return nil, false, err
	}
	return &rule, true, nil
}

func (c *RedisFeeRuleCache) Set(ctx context.Context, key string, rule *entity.FeeRule, ttl time.Duration) error {
	if rule == nil {
		return nil
	}
	payload, err := json.Marshal(rule)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *RedisFeeRuleCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
