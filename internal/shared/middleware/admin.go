package middleware

import (
	"github.com/gin-gonic/gin"

	"venue-content-backend/internal/shared/response"
	"venue-content-backend/pkg/jwt"
)

// AdminMiddleware checks the role set by AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != jwt.RoleAdmin {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
