package usecase

import (
	"context"

	"hr-agent-system/internal/auth"
)

func (uc *implUseCase) Session(ctx context.Context, sessionID string) (auth.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return *s, nil
}

func (uc *implUseCase) ActiveSessions() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions.Len()
}

// Touch reports whether the session is live and marks activity on it.
// Activity does not extend the session's lifetime.
func (uc *implUseCase) Touch(ctx context.Context, sessionID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return false
	}
	s.LastActivity = uc.now()
	return true
}

// RecordTurn increments the session's conversation count and returns it.
// Unknown sessions report 0.
func (uc *implUseCase) RecordTurn(ctx context.Context, sessionID string) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return 0
	}
	s.ConversationCount++
	s.LastActivity = uc.now()
	return s.ConversationCount
}

func (uc *implUseCase) ResetTurns(ctx context.Context, sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.sessions.Get(sessionID); ok {
		s.ConversationCount = 0
	}
}

func (uc *implUseCase) reportSessions() {
	if uc.recorder != nil {
		uc.recorder.SetActiveSessions(uc.ActiveSessions())
	}
}
