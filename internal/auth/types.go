package auth

import (
	"time"

	"hr-agent-system/internal/model"
)

const (
	DefaultSessionTTL  = 24 * time.Hour
	DefaultMaxSessions = 10000
)

// Session is one login. ConversationCount counts chat turns since login or the last reset.
type Session struct {
	ID                string
	UserID            string
	Name              string
	Role              model.Role
	CreatedAt         time.Time
	LastActivity      time.Time
	ConversationCount int
}

type LoginInput struct {
	EmployeeID string
	Password   string
}

type LoginOutput struct {
	Token      string
	ExpiresAt  time.Time
	Session    Session
	Department string
}
