package usecase

import (
	"time"

	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/chat/repository"
	"hr-agent-system/pkg/log"
)

type implUseCase struct {
	supervisor chat.Supervisor
	repo       repository.Repository
	sessions   chat.SessionTracker
	l          log.Logger
	now        func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat UseCase. sessions may be nil.
func New(supervisor chat.Supervisor, repo repository.Repository, sessions chat.SessionTracker, l log.Logger) *implUseCase {
	return &implUseCase{
		supervisor: supervisor,
		repo:       repo,
		sessions:   sessions,
		l:          l,
		now:        time.Now,
	}
}
