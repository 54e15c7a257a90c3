package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hr-agent-system/internal/auth"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
)

// Login checks the password against the stored bcrypt hash, opens a session
// and issues a token bound to it.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	id := employee.NormalizeID(input.EmployeeID)
	if id == "" || strings.TrimSpace(input.Password) == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	e, err := uc.store.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			uc.l.Infof(ctx, "uc.Login: unknown employee %s", id)
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.Login Detail: %v", err)
		return auth.LoginOutput{}, err
	}
	if e.PasswordHash == "" {
		uc.l.Warnf(ctx, "uc.Login: %s has no password set", id)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(input.Password)); err != nil {
		uc.l.Infof(ctx, "uc.Login: wrong password for %s", id)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	now := uc.now()
	sess := &auth.Session{
		ID:           uuid.NewString(),
		UserID:       e.ID,
		Name:         e.Name,
		Role:         e.Role,
		CreatedAt:    now,
		LastActivity: now,
	}

	token, expiresAt, err := uc.tokens.Issue(model.Scope{
		UserID:    e.ID,
		Username:  e.Name,
		Role:      e.Role,
		SessionID: sess.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Issue: %v", err)
		return auth.LoginOutput{}, err
	}

	uc.mu.Lock()
	uc.sessions.Add(sess.ID, sess)
	out := *sess
	uc.mu.Unlock()
	uc.reportSessions()

	uc.l.Infof(ctx, "uc.Login: %s (%s) session=%s", e.ID, e.Role, sess.ID)
	return auth.LoginOutput{
		Token:      token,
		ExpiresAt:  expiresAt,
		Session:    out,
		Department: e.Department,
	}, nil
}

// Logout drops the caller's session; later requests with its token are rejected.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	uc.mu.Lock()
	removed := uc.sessions.Remove(sc.SessionID)
	uc.mu.Unlock()
	if !removed {
		return auth.ErrSessionNotFound
	}
	uc.reportSessions()
	return nil
}
