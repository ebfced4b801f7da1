package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

// AdminMiddleware checks the role claim set by AuthMiddleware.
// The role comes straight from the token; there is no second lookup.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get(CtxRole)
		if !exists {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Access denied: admin role required")
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != "admin" {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
