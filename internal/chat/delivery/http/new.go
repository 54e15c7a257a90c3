package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/chat"
	"hr-agent-system/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Send(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	ResetSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
