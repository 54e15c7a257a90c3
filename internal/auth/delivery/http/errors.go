package http

import (
	"errors"
	"net/http"

	"hr-agent-system/internal/auth"
	pkgErrors "hr-agent-system/pkg/errors"
)

var (
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errSessionNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Session not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, auth.ErrSessionNotFound):
		return errSessionNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
