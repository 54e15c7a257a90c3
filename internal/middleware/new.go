package middleware

import (
	"context"
	"time"

	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/scope"
)

// SessionValidator reports whether a login session is still live and refreshes its activity.
type SessionValidator interface {
	Touch(ctx context.Context, sessionID string) bool
}

// HTTPRecorder receives one observation per finished request.
type HTTPRecorder interface {
	RecordHTTP(method, route string, status int, latency time.Duration)
}

// Config tunes the rate limiter.
type Config struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	sessions   SessionValidator
	limiter    *rateLimiter
	recorder   HTTPRecorder
}

// New builds the middleware set. sessions and recorder may be nil.
func New(l log.Logger, jwtManager scope.Manager, sessions SessionValidator, recorder HTTPRecorder, cfg Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		sessions:   sessions,
		limiter:    newRateLimiter(cfg),
		recorder:   recorder,
	}
}
