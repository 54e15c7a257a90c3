package auth

import (
	"context"

	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
	Session(ctx context.Context, sessionID string) (Session, error)
	ActiveSessions() int

	// Session bookkeeping used by middleware and chat.
	Touch(ctx context.Context, sessionID string) bool
	RecordTurn(ctx context.Context, sessionID string) int
	ResetTurns(ctx context.Context, sessionID string)
}

// CredentialStore looks up the employee a login refers to.
type CredentialStore interface {
	Detail(ctx context.Context, id string) (employee.Employee, error)
}

// SessionRecorder is told the live session count after every change.
type SessionRecorder interface {
	SetActiveSessions(n int)
}
