package http

import (
	"errors"
	"net/http"

	"hr-agent-system/internal/employee"
	pkgErrors "hr-agent-system/pkg/errors"
)

var (
	errWrongID          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid employee id")
	errEmployeeNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Employee not found")
	errOwnRecordsOnly   = pkgErrors.NewHTTPError(http.StatusForbidden, "Access denied: you can only view your own records.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return errEmployeeNotFound
	case errors.Is(err, employee.ErrInvalidPayload):
		return errWrongID
	default:
		return pkgErrors.ErrInternalServerError
	}
}
