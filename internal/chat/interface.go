package chat

import (
	"context"

	"hr-agent-system/internal/agent/orchestrator"
	"hr-agent-system/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
	History(ctx context.Context, sc model.Scope, limit int) ([]model.Turn, error)
	ClearHistory(ctx context.Context, sc model.Scope) error
	ResetSession(ctx context.Context, sc model.Scope) error
}

// Supervisor runs one routed chat turn.
type Supervisor interface {
	Process(ctx context.Context, sc model.Scope, query string) (orchestrator.Reply, error)
}

// SessionTracker counts turns per login session.
type SessionTracker interface {
	RecordTurn(ctx context.Context, sessionID string) int
	ResetTurns(ctx context.Context, sessionID string)
}
