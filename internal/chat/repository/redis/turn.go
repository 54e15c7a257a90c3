package redis

import (
	"context"
	"encoding/json"

	"hr-agent-system/internal/chat/repository"
	"hr-agent-system/internal/model"
)

// Append pushes turn, keeps the newest MaxTurns entries and refreshes the TTL.
func (r *implRepository) Append(ctx context.Context, userID string, turn model.Turn) error {
	payload, err := encodeTurn(turn)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("Append"), err)
		return repository.ErrFailedToAppend
	}

	key := repository.Key(userID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, int64(-r.opt.MaxTurns), -1)
	pipe.Expire(ctx, key, r.opt.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return repository.ErrFailedToAppend
	}
	return nil
}

func (r *implRepository) Recent(ctx context.Context, userID string, limit int) ([]model.Turn, error) {
	if limit <= 0 || limit > r.opt.MaxTurns {
		limit = r.opt.MaxTurns
	}

	raw, err := r.client.LRange(ctx, repository.Key(userID), int64(-limit), -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Recent"), err)
		return nil, repository.ErrFailedToList
	}
	return r.decodeTurns(ctx, raw), nil
}

func (r *implRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, repository.Key(userID)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return repository.ErrFailedToClear
	}
	return nil
}

func encodeTurn(turn model.Turn) (string, error) {
	b, err := json.Marshal(turn)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTurns skips entries that no longer parse.
func (r *implRepository) decodeTurns(ctx context.Context, raw []string) []model.Turn {
	turns := make([]model.Turn, 0, len(raw))
	for _, s := range raw {
		var t model.Turn
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			r.l.Warnf(ctx, "%s skip entry: %v", r.dsn("decodeTurns"), err)
			continue
		}
		turns = append(turns, t)
	}
	return turns
}
