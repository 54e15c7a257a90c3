package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrNoUser       = errors.New("caller has no user id")
)
