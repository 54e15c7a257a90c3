package chat

import (
	"time"

	"hr-agent-system/internal/model"
)

// DefaultHistoryLimit is used when History is called without a limit.
const DefaultHistoryLimit = 10

type SendInput struct {
	Message string
}

type SendOutput struct {
	Response          string
	Category          model.TaskCategory
	Handler           string
	Authorized        bool
	Phrased           bool
	SessionID         string
	ConversationCount int
	Timestamp         time.Time
}
