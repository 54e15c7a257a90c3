package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/auth"
	"hr-agent-system/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

func New(l log.Logger, uc auth.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
