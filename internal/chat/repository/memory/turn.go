package memory

import (
	"context"

	"hr-agent-system/internal/model"
)

func (r *implRepository) Append(ctx context.Context, userID string, turn model.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns, _ := r.cache.Get(userID)
	next := make([]model.Turn, 0, min(len(turns)+1, r.opt.MaxTurns))
	if drop := len(turns) + 1 - r.opt.MaxTurns; drop > 0 {
		turns = turns[drop:]
	}
	next = append(next, turns...)
	next = append(next, turn)
	r.cache.Add(userID, next)
	return nil
}

func (r *implRepository) Recent(ctx context.Context, userID string, limit int) ([]model.Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns, ok := r.cache.Get(userID)
	if !ok {
		return []model.Turn{}, nil
	}
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (r *implRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(userID)
	return nil
}
