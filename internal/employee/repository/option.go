package repository

import (
	"time"

	"hr-agent-system/internal/model"
)

// UpsertEmployeeOptions replaces an employee row and its full leave history.
type UpsertEmployeeOptions struct {
	ID           string
	Name         string
	Department   string
	Role         model.Role
	Balance      int
	PasswordHash string
	LeaveHistory []string
	Now          time.Time
}

// GetOneEmployeeOptions fetches a single employee by id.
type GetOneEmployeeOptions struct {
	ID string
}

// ListEmployeesOptions holds filter and pagination parameters.
// Department matches case-insensitively; Query is a substring over name, id and department.
type ListEmployeesOptions struct {
	Department string
	Query      string
	Limit      int
	Offset     int
	OrderBy    string
}

type ApplyLeaveOptions struct {
	EmployeeID string
	Dates      []string
	Now        time.Time
}
