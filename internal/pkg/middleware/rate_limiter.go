package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // key prefix
	Limit       int           // requests allowed per period, 0 disables the limiter
	Period      time.Duration // window length
}

// RateLimiterMiddleware counts requests per route and caller in fixed Redis
// windows. Redis errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.Limit <= 0 || config.RedisClient == nil {
			return next
		}

		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				identifier = userID
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err == nil && count == 1 {
				err = config.RedisClient.Expire(ctx, key, config.Period).Err()
			}
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				wait, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || wait < 0 {
					wait = config.Period
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(wait.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Muitas tentativas. Aguarde e tente novamente.")
			}

			return next(c)
		}
	}
}

// IPRateLimiter limits anonymous endpoints per client IP
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "tutor:rate:ip",
		Limit:       limit,
		Period:      period,
	})
}

// UserRateLimiter limits authenticated endpoints per tutor
func UserRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "tutor:rate:user",
		Limit:       limit,
		Period:      period,
	})
}
