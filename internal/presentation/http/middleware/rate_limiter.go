package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
	"golang.org/x/time/rate"
)

// ShopRateLimiter throttles requests per shop so one busy counter cannot starve the others.
// Requests without a shop are limited per client IP.
type ShopRateLimiter struct {
	mu       sync.Mutex
	shops    map[uuid.UUID]*limiterEntry
	clients  map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	entryTTL time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	Requests        int           // requests allowed per Window
	Window          time.Duration
	CleanupInterval time.Duration
	EntryTTL        time.Duration
}

// NewShopRateLimiter creates the limiter and starts its cleanup loop
func NewShopRateLimiter(cfg RateLimiterConfig) *ShopRateLimiter {
	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if cfg.EntryTTL <= 0 {
		cfg.EntryTTL = 10 * time.Minute
	}

	rl := &ShopRateLimiter{
		shops:    make(map[uuid.UUID]*limiterEntry),
		clients:  make(map[string]*limiterEntry),
		rate:     rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:    cfg.Requests,
		entryTTL: cfg.EntryTTL,
	}
	go rl.cleanupLoop(cfg.CleanupInterval)
	return rl
}

func (rl *ShopRateLimiter) shopLimiter(shopID uuid.UUID) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.shops[shopID]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.shops[shopID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *ShopRateLimiter) clientLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.clients[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *ShopRateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup(time.Now())
	}
}

func (rl *ShopRateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.entryTTL)
	for id, entry := range rl.shops {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.shops, id)
		}
	}
	for ip, entry := range rl.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// Middleware returns a Gin middleware that applies the limit.
// It must run after ShopMiddleware to limit by shop.
func (rl *ShopRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var limiter *rate.Limiter
		if shopID := GetShopID(c); shopID != uuid.Nil {
			limiter = rl.shopLimiter(shopID)
		} else {
			limiter = rl.clientLimiter(c.ClientIP())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			response.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
