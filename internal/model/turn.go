package model

import "time"

// Turn is one question and answer in a caller's conversation.
type Turn struct {
	Query      string       `json:"query"`
	Response   string       `json:"response"`
	Category   TaskCategory `json:"category"`
	Handler    string       `json:"handler"`
	Authorized bool         `json:"authorized"`
	Timestamp  time.Time    `json:"timestamp"`
}
