package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent-system/pkg/response"
)

// Detail godoc
// @Summary     Get employee detail
// @Description Returns one employee record. Non-HR callers may only read their own record.
// @Tags        Employees
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Employee ID (e.g. E003)"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/employees/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	e, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(e))
}

// List godoc
// @Summary     List employees
// @Description Paginated employee directory with department filter and free-text search. HR only.
// @Tags        Employees
// @Produce     json
// @Security    BearerAuth
// @Param       department query string false "Department (case-insensitive)"
// @Param       q          query string false "Substring over name, id and department"
// @Param       limit      query int    false "Page size (default: 20)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/employees [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "employee.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Departments godoc
// @Summary     Department summary
// @Description Head count, balances and leaves taken per department. HR only.
// @Tags        Employees
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} departmentsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/departments [GET]
func (h *handler) Departments(c *gin.Context) {
	ctx := c.Request.Context()

	deps, err := h.uc.Departments(ctx)
	if err != nil {
		h.l.Errorf(ctx, "employee.delivery.http.Departments: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDepartmentsResp(deps))
}
