package usecase

import (
	"context"

	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) ([]model.Turn, error) {
	if sc.UserID == "" {
		return nil, chat.ErrNoUser
	}
	if limit <= 0 {
		limit = chat.DefaultHistoryLimit
	}

	turns, err := uc.repo.Recent(ctx, sc.UserID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History Recent: %v", err)
		return nil, err
	}
	return turns, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if sc.UserID == "" {
		return chat.ErrNoUser
	}
	if err := uc.repo.Clear(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.ClearHistory Clear: %v", err)
		return err
	}
	return nil
}

// ResetSession clears history and restarts the session's turn count.
func (uc *implUseCase) ResetSession(ctx context.Context, sc model.Scope) error {
	if err := uc.ClearHistory(ctx, sc); err != nil {
		return err
	}
	if uc.sessions != nil && sc.SessionID != "" {
		uc.sessions.ResetTurns(ctx, sc.SessionID)
	}
	return nil
}
