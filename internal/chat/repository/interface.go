package repository

import (
	"context"

	"hr-agent-system/internal/model"
)

// Repository keeps a bounded, expiring list of turns per user.
//
//go:generate mockery --name Repository
type Repository interface {
	Append(ctx context.Context, userID string, turn model.Turn) error
	// Recent returns up to limit turns, oldest first.
	Recent(ctx context.Context, userID string, limit int) ([]model.Turn, error)
	Clear(ctx context.Context, userID string) error
}
