package usecase

import (
	"time"

	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/employee/repository"
	"hr-agent-system/pkg/log"
)

// implUseCase is the private implementation of employee.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ employee.UseCase = (*implUseCase)(nil)

// New creates a new employee UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
