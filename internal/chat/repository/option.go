package repository

import "time"

const (
	DefaultMaxTurns = 20
	DefaultTTL      = time.Hour
	KeyPrefix       = "conversation:"
)

// Options bound every user's history.
type Options struct {
	MaxTurns int
	TTL      time.Duration
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.MaxTurns <= 0 {
		o.MaxTurns = DefaultMaxTurns
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return o
}

// Key is the store key for userID.
func Key(userID string) string {
	return KeyPrefix + userID
}
