package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/internal/employee"
	pkgErrors "hr-agent-system/pkg/errors"
	"hr-agent-system/pkg/scope"
)

// processDetailReq resolves the path id and enforces that non-HR callers only read their own record.
func (h *handler) processDetailReq(c *gin.Context) (string, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", pkgErrors.ErrUnauthorized
	}

	id := employee.NormalizeID(c.Param("id"))
	if id == "" {
		return "", errWrongID
	}
	if !sc.Role.IsHR() && id != employee.NormalizeID(sc.UserID) {
		return "", errOwnRecordsOnly
	}
	return id, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
