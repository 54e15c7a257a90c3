package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-agent-system/internal/agent/orchestrator"
	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/model"
)

// Send runs one turn through the supervisor and bumps the session's turn count.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}
	if sc.UserID == "" {
		return chat.SendOutput{}, chat.ErrNoUser
	}

	reply, err := uc.supervisor.Process(ctx, sc, msg)
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyQuery) {
			return chat.SendOutput{}, chat.ErrEmptyMessage
		}
		uc.l.Errorf(ctx, "uc.Send Process: %v", err)
		return chat.SendOutput{}, err
	}

	count := 0
	if uc.sessions != nil && sc.SessionID != "" {
		count = uc.sessions.RecordTurn(ctx, sc.SessionID)
	}

	return chat.SendOutput{
		Response:          reply.Text,
		Category:          reply.Decision.Category,
		Handler:           reply.Handler,
		Authorized:        reply.Decision.Authorized,
		Phrased:           reply.Phrased,
		SessionID:         sc.SessionID,
		ConversationCount: count,
		Timestamp:         uc.now(),
	}, nil
}
