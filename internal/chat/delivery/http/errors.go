package http

import (
	"errors"
	"net/http"

	"hr-agent-system/internal/chat"
	pkgErrors "hr-agent-system/pkg/errors"
)

var (
	errEmptyMessage = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message cannot be empty")
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrNoUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
