package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/cache"
)

// RateLimit caps requests per client IP for the route it is attached to,
// using a Redis counter with a fixed window. Used on the public contact
// form, which is the only unauthenticated write in the API.
//
// If Redis is unreachable the request is allowed through: losing abuse
// protection is preferable to taking the contact form down.
func RateLimit(store cache.Cache, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Err(err).
				Msg("Rate limit counter unavailable, allowing request")
			c.Next()
			return
		}

		// First hit in this window starts the clock.
		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Msg("Failed to set rate limit window")
			}
		}

		if count > int64(limit) {
			response.TooManyRequests(c, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
