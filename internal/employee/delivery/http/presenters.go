package http

import (
	"hr-agent-system/internal/employee"
	"hr-agent-system/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Department string `form:"department"`
	Query      string `form:"q"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) toInput() employee.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return employee.ListInput{
		Department: r.Department,
		Query:      r.Query,
		Limit:      limit,
		Offset:     r.Offset,
	}
}

// --- Response DTOs ---

type employeeResp struct {
	ID           string            `json:"employee_id"`
	Name         string            `json:"name"`
	Department   string            `json:"department"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Balance      int               `json:"leave_balance"`
	LeavesTaken  int               `json:"leaves_taken"`
	LeaveHistory []string          `json:"leave_history"`
	MemberSince  response.Date     `json:"member_since"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newEmployeeResp(e employee.Employee) employeeResp {
	history := e.LeaveHistory
	if history == nil {
		history = []string{}
	}
	return employeeResp{
		ID:           e.ID,
		Name:         e.Name,
		Department:   e.Department,
		Email:        e.Email(),
		Role:         e.Role.String(),
		Balance:      e.Balance,
		LeavesTaken:  e.LeavesTaken(),
		LeaveHistory: history,
		MemberSince:  response.Date(e.CreatedAt),
		UpdatedAt:    response.DateTime(e.UpdatedAt),
	}
}

type detailResp struct {
	Employee employeeResp `json:"employee"`
}

func (h *handler) newDetailResp(e employee.Employee) detailResp {
	return detailResp{Employee: newEmployeeResp(e)}
}

type listResp struct {
	Employees []employeeResp `json:"employees"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListResp(out employee.ListOutput) listResp {
	items := make([]employeeResp, len(out.Employees))
	for i, e := range out.Employees {
		items[i] = newEmployeeResp(e)
	}
	return listResp{
		Employees: items,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}

type departmentResp struct {
	Name           string  `json:"name"`
	Headcount      int     `json:"headcount"`
	TotalBalance   int     `json:"total_balance"`
	AverageBalance float64 `json:"average_balance"`
	LeavesTaken    int     `json:"leaves_taken"`
}

type departmentsResp struct {
	Departments []departmentResp `json:"departments"`
}

func (h *handler) newDepartmentsResp(deps []employee.DepartmentSummary) departmentsResp {
	items := make([]departmentResp, len(deps))
	for i, d := range deps {
		items[i] = departmentResp{
			Name:           d.Name,
			Headcount:      d.Headcount,
			TotalBalance:   d.TotalBalance,
			AverageBalance: d.AverageBalance(),
			LeavesTaken:    d.TotalTaken,
		}
	}
	return departmentsResp{Departments: items}
}
