package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"hr-agent-system/internal/chat/repository"
	"hr-agent-system/pkg/log"
)

type implRepository struct {
	client goredis.UniversalClient
	opt    repository.Options
	l      log.Logger
}

// New creates a Redis-backed history Repository.
func New(client goredis.UniversalClient, opt repository.Options, l log.Logger) repository.Repository {
	if client == nil {
		panic("chat/repository/redis: client is required")
	}
	return &implRepository{client: client, opt: opt.WithDefaults(), l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/redis.%s", method)
}
