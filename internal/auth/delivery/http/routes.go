package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Login is public.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := api.Group("/auth")
	{
		a.POST("/login", h.Login)
		a.POST("/logout", mw.Auth(), h.Logout)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
