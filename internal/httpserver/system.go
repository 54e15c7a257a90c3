package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "hr-agent-system/pkg/errors"
	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

type sessionInfo struct {
	SessionID         string    `json:"session_id"`
	EmployeeID        string    `json:"employee_id"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	LastActivity      time.Time `json:"last_activity"`
	ConversationCount int       `json:"conversation_count"`
}

type systemStatusResp struct {
	Service        string            `json:"service"`
	Version        string            `json:"version"`
	Environment    string            `json:"environment"`
	Uptime         string            `json:"uptime"`
	Components     map[string]string `json:"components"`
	Handlers       []string          `json:"handlers"`
	ActiveSessions int               `json:"active_sessions"`
	Session        *sessionInfo      `json:"session,omitempty"`
}

// systemStatus godoc
// @Summary     System status
// @Description Component health, registered agents and the caller's session.
// @Tags        System
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} systemStatusResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/system/status [GET]
func (srv HTTPServer) systemStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	components := srv.pingComponents(ctx)
	components["llm"] = componentDisabled
	if srv.supervisor.Phrasing() {
		components["llm"] = srv.llmName
	}

	resp := systemStatusResp{
		Service:        ServiceName,
		Version:        HealthVersion,
		Environment:    srv.environment,
		Uptime:         time.Since(srv.startedAt).Round(time.Second).String(),
		Components:     components,
		Handlers:       srv.supervisor.Handlers(),
		ActiveSessions: srv.authUC.ActiveSessions(),
	}
	if s, err := srv.authUC.Session(ctx, sc.SessionID); err == nil {
		resp.Session = &sessionInfo{
			SessionID:         s.ID,
			EmployeeID:        s.UserID,
			Role:              s.Role.String(),
			CreatedAt:         s.CreatedAt,
			LastActivity:      s.LastActivity,
			ConversationCount: s.ConversationCount,
		}
	}

	response.OK(c, resp)
}
