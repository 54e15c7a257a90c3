package orchestrator

import (
	"context"
	"time"

	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
)

// Config controls the supervisor's optional behaviour.
type Config struct {
	LLMPhrasing     bool
	MaxHistoryTurns int
	Timezone        string
}

// Reply is the outcome of one chat turn.
type Reply struct {
	Text     string
	Decision router.Decision
	Handler  string
	Phrased  bool
}

// HistoryStore keeps the recent turns of each user.
type HistoryStore interface {
	Append(ctx context.Context, userID string, turn model.Turn) error
	Recent(ctx context.Context, userID string, limit int) ([]model.Turn, error)
}

// Recorder receives routing and handler observations.
type Recorder interface {
	RecordDecision(category, handler string, authorized bool)
	RecordHandler(handler string, latency time.Duration, errorType string)
}
