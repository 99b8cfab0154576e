package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/config"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type shopStore struct {
	shops map[uuid.UUID]*entity.Shop
}

func (s *shopStore) CreateWithOwner(_ context.Context, shop *entity.Shop, _ *entity.User) error {
	s.shops[shop.ID] = shop
	return nil
}

func (s *shopStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	return s.shops[id], nil
}

func (s *shopStore) SlugExists(context.Context, string) (bool, error) {
	return false, nil
}

type idempotencyStore struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func (s *idempotencyStore) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[userID.String()+key], nil
}

func (s *idempotencyStore) Create(_ context.Context, k *entity.IdempotencyKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := k.UserID.String() + k.Key
	if existing, ok := s.keys[id]; ok && !existing.IsExpired() {
		return nil
	}
	s.keys[id] = k
	return nil
}

func (s *idempotencyStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, v := range s.keys {
		if v.ExpiresAt.Before(before) {
			delete(s.keys, k)
			n++
		}
	}
	return n, nil
}

func echoShop(c *gin.Context) {
	c.String(http.StatusOK, GetShopID(c).String())
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Minute, time.Hour)
	shopID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(utils.TokenSubject{
		UserID:      uuid.New(),
		Email:       "owner@shop.pk",
		Role:        enum.RoleShopOwner.String(),
		ShopID:      shopID,
		Permissions: enum.RoleShopOwner.Permissions(),
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/closing", AuthMiddleware(jwtManager), RequirePermission(enum.PermSubmitClosing), echoShop)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/closing", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, shopID.String(), w.Body.String())
			}
		})
	}
}

func TestCORSAllowsShopAndIdempotencyHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(&config.CORSConfig{
		AllowedOrigins: []string{"https://pos.example.pk"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.POST("/sales", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/sales", nil)
	req.Header.Set("Origin", "https://pos.example.pk")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	allowed := w.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowed, http.CanonicalHeaderKey(ShopIDHeader))
	assert.Contains(t, allowed, http.CanonicalHeaderKey(IdempotencyKeyHeader))
}

func TestAuthMiddlewareReportsExpiredToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", -time.Minute, time.Hour)
	token, err := jwtManager.GenerateAccessToken(utils.TokenSubject{UserID: uuid.New()})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/profile", AuthMiddleware(jwtManager), echoShop)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestRequirePermissionRejectsWorkerOnSubmit(t *testing.T) {
	r := gin.New()
	r.POST("/daily-closing", func(c *gin.Context) {
		c.Set(CtxPermissions, enum.RoleShopWorker.Permissions())
		c.Next()
	}, RequirePermission(enum.PermSubmitClosing), echoShop)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/daily-closing", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestShopMiddleware(t *testing.T) {
	known := &entity.Shop{ID: uuid.New(), Name: "Ali Mobiles"}
	store := &shopStore{shops: map[uuid.UUID]*entity.Shop{known.ID: known}}
	staffShop := uuid.New()

	as := func(role enum.UserRole, shopID uuid.UUID) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(CtxUserRole, role.String())
			c.Set(CtxShopID, shopID)
			c.Next()
		}
	}

	tests := []struct {
		name     string
		role     enum.UserRole
		shopID   uuid.UUID
		header   string
		status   int
		wantShop uuid.UUID
	}{
		{"staff act on their own shop", enum.RoleShopWorker, staffShop, known.ID.String(), http.StatusOK, staffShop},
		{"staff without shop", enum.RoleShopOwner, uuid.Nil, "", http.StatusForbidden, uuid.Nil},
		{"admin without header", enum.RoleSuperAdmin, uuid.Nil, "", http.StatusBadRequest, uuid.Nil},
		{"admin with malformed header", enum.RoleSuperAdmin, uuid.Nil, "shop-1", http.StatusBadRequest, uuid.Nil},
		{"admin with unknown shop", enum.RoleSuperAdmin, uuid.Nil, uuid.NewString(), http.StatusNotFound, uuid.Nil},
		{"admin with known shop", enum.RoleSuperAdmin, uuid.Nil, known.ID.String(), http.StatusOK, known.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/sales", as(tt.role, tt.shopID), ShopMiddleware(store), echoShop)

			req := httptest.NewRequest(http.MethodGet, "/sales", nil)
			if tt.header != "" {
				req.Header.Set(ShopIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.wantShop.String(), w.Body.String())
			}
		})
	}
}

func TestIdempotencyReplaysSuccessfulWrite(t *testing.T) {
	store := &idempotencyStore{keys: map[string]*entity.IdempotencyKey{}}
	userID := uuid.New()
	calls := 0

	r := gin.New()
	r.POST("/mobile-services", func(c *gin.Context) {
		c.Set(CtxUserID, userID)
		c.Next()
	}, Idempotency(store), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	send := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mobile-services", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send("k1")
	second := send("k1")
	third := send("k2")

	assert.Equal(t, 2, calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"call":2}`, third.Body.String())
}

func TestIdempotencyDoesNotStoreFailures(t *testing.T) {
	store := &idempotencyStore{keys: map[string]*entity.IdempotencyKey{}}
	userID := uuid.New()

	r := gin.New()
	r.POST("/sales", func(c *gin.Context) {
		c.Set(CtxUserID, userID)
		c.Next()
	}, Idempotency(store), func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
	})

	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "retry-me")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, store.keys)
}

func TestIdempotencyExpiredKeyIsProcessedAgain(t *testing.T) {
	store := &idempotencyStore{keys: map[string]*entity.IdempotencyKey{}}
	userID := uuid.New()
	store.keys[userID.String()+"k1"] = &entity.IdempotencyKey{
		Key:          "k1",
		UserID:       userID,
		Endpoint:     "POST /sales",
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"call":0}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	calls := 0

	r := gin.New()
	r.POST("/sales", func(c *gin.Context) {
		c.Set(CtxUserID, userID)
		c.Next()
	}, Idempotency(store), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/sales", nil)
		req.Header.Set(IdempotencyKeyHeader, "k1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"call":1}`, first.Body.String())

	second := send()
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"call":1}`, second.Body.String())
	assert.Equal(t, 1, calls)
}

func TestIdempotencyKeyIsBoundToItsEndpoint(t *testing.T) {
	store := &idempotencyStore{keys: map[string]*entity.IdempotencyKey{}}
	userID := uuid.New()
	calls := 0

	r := gin.New()
	setUser := func(c *gin.Context) {
		c.Set(CtxUserID, userID)
		c.Next()
	}
	count := func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	}
	r.POST("/sales", setUser, Idempotency(store), count)
	r.POST("/loans", setUser, Idempotency(store), count)

	send := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(IdempotencyKeyHeader, "shared")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send("/sales")
	require.Equal(t, http.StatusCreated, first.Code)

	other := send("/loans")
	assert.Equal(t, http.StatusUnprocessableEntity, other.Code)
	assert.Empty(t, other.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 1, calls)

	again := send("/sales")
	assert.Equal(t, "true", again.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 1, calls)
}

func TestPurgeExpiredIdempotencyKeysStopsWithContext(t *testing.T) {
	store := &idempotencyStore{keys: map[string]*entity.IdempotencyKey{
		"old": {Key: "old", ExpiresAt: time.Now().Add(-time.Hour)},
	}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		PurgeExpiredIdempotencyKeys(ctx, store, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.keys) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge loop did not stop")
	}
}
