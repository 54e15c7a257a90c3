package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. All of them require a token.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	c := api.Group("/chat", mw.Auth())
	{
		c.POST("", h.Send)
		c.GET("/history", h.History)
		c.DELETE("/history", h.ClearHistory)
	}
	api.POST("/user/session/reset", mw.Auth(), h.ResetSession)
}
