package http

import (
	"time"

	"hr-agent-system/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{EmployeeID: r.EmployeeID, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	SessionID string    `json:"session_id"`
	User      userResp  `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		SessionID: out.Session.ID,
		User: userResp{
			EmployeeID: out.Session.UserID,
			Name:       out.Session.Name,
			Role:       out.Session.Role.String(),
			Department: out.Department,
		},
	}
}

type sessionResp struct {
	SessionID         string    `json:"session_id"`
	User              userResp  `json:"user"`
	CreatedAt         time.Time `json:"created_at"`
	LastActivity      time.Time `json:"last_activity"`
	ConversationCount int       `json:"conversation_count"`
}

func (h *handler) newSessionResp(s auth.Session) sessionResp {
	return sessionResp{
		SessionID: s.ID,
		User: userResp{
			EmployeeID: s.UserID,
			Name:       s.Name,
			Role:       s.Role.String(),
		},
		CreatedAt:         s.CreatedAt,
		LastActivity:      s.LastActivity,
		ConversationCount: s.ConversationCount,
	}
}
