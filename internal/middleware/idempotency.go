package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	ContextIdempotencyCacheKey = "idempotency_cache_key"
	ContextIdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// IdempotentResponse is the cached outcome of a request, replayed as is.
type IdempotentResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// StoreIdempotentResponse caches data under the request's cache key, if the
// Idempotency middleware set one.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, data any, ttl time.Duration) error {
	cacheKey := c.GetString(ContextIdempotencyCacheKey)
	if rdb == nil || cacheKey == "" {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(IdempotentResponse{Status: status, Data: raw})
	if err != nil {
		return err
	}
	return rdb.Set(c.Request.Context(), cacheKey, payload, ttl).Err()
}

// Idempotency replays a cached response for a repeated Idempotency-Key and
// rejects a repeat while the first request is still running. The handler
// stores its response with StoreIdempotentResponse and releases the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L())
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var cached IdempotentResponse
			if jsonErr := json.Unmarshal(val, &cached); jsonErr == nil && cached.Status != 0 {
				log.Info("idempotent replay", zap.String("key", idempKey), zap.Int("status", cached.Status))
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, cached.Status, cached.Data, nil)
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			log.Warn("idempotency cache read failed", zap.Error(err))
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.AbortError(c, http.StatusConflict, "PROCESSING", "The same request is still being processed", nil)
			return
		}

		c.Set(ContextIdempotencyCacheKey, cacheKey)
		c.Set(ContextIdempotencyLockKey, lockKey)

		c.Next()
	}
}
