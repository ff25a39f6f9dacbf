package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/shared/config"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

// RateLimitMiddleware enforces per-IP fixed-window limits on the API surface.
// Two independent caps apply: a general one on every API route and a tighter
// one on the login endpoint. Counters live in Redis, so the limits hold across
// multiple instances.
type RateLimitMiddleware struct {
	limiter    ratelimit.RateLimiter
	apiLimit   ratelimit.Limit
	loginLimit ratelimit.Limit
	logger     logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, log logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		apiLimit: ratelimit.Limit{
			Requests: cfg.APIRequests,
			Window:   time.Duration(cfg.APIWindowMinutes) * time.Minute,
		},
		loginLimit: ratelimit.Limit{
			Requests: cfg.LoginRequests,
			Window:   time.Duration(cfg.LoginWindowHours) * time.Hour,
		},
		logger: log,
	}
}

// LimitAPI caps all requests from a single client IP.
func (m *RateLimitMiddleware) LimitAPI() gin.HandlerFunc {
	return m.limit("api", m.apiLimit)
}

// LimitLogin caps login attempts from a single client IP. It stacks on top of
// the general API limit.
func (m *RateLimitMiddleware) LimitLogin() gin.HandlerFunc {
	return m.limit("login", m.loginLimit)
}

func (m *RateLimitMiddleware) limit(scope string, limit ratelimit.Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			// Redis being down must not take the API with it.
			m.logger.Warnw("rate limiter unavailable, allowing request",
				"scope", scope,
				"client_ip", c.ClientIP(),
				"error", err,
			)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
