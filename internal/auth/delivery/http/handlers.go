package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "hr-agent-system/pkg/errors"
	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

// Login godoc
// @Summary     Log in
// @Description Exchanges an employee id and password for a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidCredentials)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

// Logout godoc
// @Summary     Log out
// @Description Ends the caller's session. The token stops working immediately.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current session
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	s, err := h.uc.Session(ctx, sc.SessionID)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(s))
}
