package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/config"
)

// LoginRateLimit applies a Redis fixed-window counter per client IP to the
// credential endpoints. When Redis is nil or errors, the limiter degrades to
// a passthrough rather than blocking logins.
func LoginRateLimit(cfg config.LoginRateLimit, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := "rl:auth:" + ip
			ctx := c.Request().Context()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Msg("rate limit: redis error")
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				retry := int(cfg.Window.Seconds())
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				log.Info().Str("ip", ip).Int64("attempts", n).Msg("rate limit: blocked")
				return c.String(http.StatusTooManyRequests, "Too many attempts, try again later")
			}
			return next(c)
		}
	}
}
