package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hr-agent-system/internal/model"
)

type claims struct {
	Name      string     `json:"name,omitempty"`
	Role      model.Role `json:"role"`
	SessionID string     `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (m *jwtManager) Issue(sc model.Scope) (string, time.Time, error) {
	if sc.UserID == "" {
		return "", time.Time{}, fmt.Errorf("scope.Issue: %w", ErrInvalidToken)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	c := claims{
		Name:      sc.Username,
		Role:      sc.Role,
		SessionID: sc.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.UserID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("scope.Issue: %w", err)
	}
	return token, expiresAt, nil
}

func (m *jwtManager) Verify(token string) (model.Scope, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Scope{}, ErrExpiredToken
		}
		return model.Scope{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{
		UserID:    c.Subject,
		Username:  c.Name,
		Role:      c.Role,
		SessionID: c.SessionID,
	}, nil
}
