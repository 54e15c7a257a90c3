package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/middleware"
)

// RegisterRoutes maps the directory endpoints. Every route requires a token;
// listing and aggregates are HR only.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	employees := api.Group("/employees", mw.Auth())
	{
		employees.GET("", mw.HROnly(), h.List)
		employees.GET("/:id", h.Detail)
	}
	api.GET("/departments", mw.Auth(), mw.HROnly(), h.Departments)
}
