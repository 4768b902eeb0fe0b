package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"teamboard/pkg/response"
	"teamboard/pkg/scope"
)

// Auth verifies the bearer token and attaches the resulting scope to the
// request context. Handlers read it back with scope.FromContext.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetToContext(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
