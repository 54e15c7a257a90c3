package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/model"
	pkgErrors "hr-agent-system/pkg/errors"
	"hr-agent-system/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processSendReq(c *gin.Context) (model.Scope, sendReq, error) {
	var req sendReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "chat.delivery.http.processSendReq: %v", err)
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (model.Scope, historyReq, error) {
	var req historyReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}
