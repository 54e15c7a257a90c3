package agent

import "errors"

// AccessDeniedMessage is shown when ErrAccessDenied ends a turn.
const AccessDeniedMessage = "Access denied: you can only view your own records."

var (
	// ErrAccessDenied is returned when a caller asks for another employee's records.
	ErrAccessDenied     = errors.New("access denied")
	ErrHandlerNotFound  = errors.New("handler not registered")
	ErrInvalidHandler   = errors.New("handler must have a name")
	ErrDuplicateHandler = errors.New("handler already registered")
)
