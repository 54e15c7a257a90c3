package scope

import (
	"errors"
	"time"

	"hr-agent-system/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrEmptySecret  = errors.New("jwt secret is required")
)

// Manager issues and verifies caller tokens.
type Manager interface {
	Issue(sc model.Scope) (token string, expiresAt time.Time, err error)
	Verify(token string) (model.Scope, error)
}

// New returns an HS256 Manager. ttl <= 0 uses DefaultTTL.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &jwtManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}
