package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hr-agent-system/internal/auth"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/scope"
)

// Config bounds the session registry.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type implUseCase struct {
	store    auth.CredentialStore
	tokens   scope.Manager
	recorder auth.SessionRecorder
	l        log.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions *expirable.LRU[string, *auth.Session]
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates the auth UseCase. recorder may be nil.
func New(store auth.CredentialStore, tokens scope.Manager, recorder auth.SessionRecorder, l log.Logger, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = auth.DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = auth.DefaultMaxSessions
	}
	return &implUseCase{
		store:    store,
		tokens:   tokens,
		recorder: recorder,
		l:        l,
		now:      time.Now,
		sessions: expirable.NewLRU[string, *auth.Session](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}
