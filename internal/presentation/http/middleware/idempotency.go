package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored response is replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// bodyRecorder copies the response body while it is written
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a client retries a write with the
// same Idempotency-Key. Keys are scoped to the authenticated user and bound to the
// endpoint that first used them; reusing a live key on another endpoint is a 422.
// Only 2xx responses are stored, so a failed request can be retried with the same key.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		v, _ := c.Get(CtxUserID)
		userID, ok := v.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		endpoint := c.Request.Method + " " + c.FullPath()
		existing, err := repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			log.Printf("Warning: idempotency lookup failed, processing request: %v", err)
			c.Next()
			return
		}
		if existing != nil && !existing.IsExpired() {
			if existing.Endpoint != endpoint {
				response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request")
				c.Abort()
				return
			}
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		record := &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			ShopID:       GetShopID(c),
			Endpoint:     endpoint,
			ResponseCode: status,
			ResponseBody: recorder.body.String(),
			ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
		}
		if err := repo.Create(c.Request.Context(), record); err != nil {
			log.Printf("Warning: storing idempotency key for %s: %v", record.Endpoint, err)
		}
	}
}

// PurgeExpiredIdempotencyKeys deletes expired keys every interval until ctx is done
func PurgeExpiredIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				log.Printf("Warning: purging idempotency keys: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Purged %d expired idempotency keys", n)
			}
		}
	}
}
