package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		if m.sessions != nil && sc.SessionID != "" && !m.sessions.Touch(ctx, sc.SessionID) {
			m.l.Debugf(ctx, "middleware.Auth: session %s expired or revoked", sc.SessionID)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// HROnly must run after Auth.
func (m Middleware) HROnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !sc.Role.IsHR() {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
