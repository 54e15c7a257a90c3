package memory

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hr-agent-system/internal/chat/repository"
	"hr-agent-system/internal/model"
)

// DefaultMaxUsers bounds how many users' histories are kept in process.
const DefaultMaxUsers = 10000

type implRepository struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, []model.Turn]
	opt   repository.Options
}

// New creates an in-process history Repository for when Redis is not configured.
// Each user's list expires TTL after its last append.
func New(opt repository.Options, maxUsers int) repository.Repository {
	opt = opt.WithDefaults()
	if maxUsers <= 0 {
		maxUsers = DefaultMaxUsers
	}
	return &implRepository{
		cache: expirable.NewLRU[string, []model.Turn](maxUsers, nil, opt.TTL),
		opt:   opt,
	}
}
