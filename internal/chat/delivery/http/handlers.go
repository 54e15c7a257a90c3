package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Routes the message to a specialist agent and returns its answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Message cannot be empty"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(out))
}

// History godoc
// @Summary     Conversation history
// @Description Most recent turns for the caller, oldest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of turns (default: 10)"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	turns, err := h.uc.History(ctx, sc, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(turns))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ResetSession godoc
// @Summary     Reset chat session
// @Description Clears history and restarts the session's conversation count.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} resetResp
// @Router      /api/user/session/reset [POST]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ResetSession(ctx, sc); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ResetSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, resetResp{SessionID: sc.SessionID, Message: "Session reset"})
}
