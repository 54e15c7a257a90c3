package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/employee"
	"hr-agent-system/pkg/log"
)

// Handler is the public interface for the employee directory HTTP delivery layer.
type Handler interface {
	Detail(c *gin.Context)
	List(c *gin.Context)
	Departments(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc employee.UseCase
}

// New creates a new HTTP handler for the employee directory.
func New(l log.Logger, uc employee.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
