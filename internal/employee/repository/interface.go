package repository

import (
	"context"

	"hr-agent-system/internal/employee"
)

// Repository is the composed interface for the employee record store.
type Repository interface {
	EmployeeRepository
	LeaveRepository
}

// EmployeeRepository defines data access for employee rows.
type EmployeeRepository interface {
	UpsertEmployee(ctx context.Context, opt UpsertEmployeeOptions) (employee.Employee, error)
	GetOneEmployee(ctx context.Context, opt GetOneEmployeeOptions) (employee.Employee, error)
	ListEmployees(ctx context.Context, opt ListEmployeesOptions) ([]employee.Employee, int, error)
	ListDepartments(ctx context.Context) ([]employee.DepartmentSummary, error)
}

// LeaveRepository defines data access for leave history.
type LeaveRepository interface {
	// ApplyLeave deducts len(opt.Dates) days and records the dates in one transaction.
	ApplyLeave(ctx context.Context, opt ApplyLeaveOptions) (employee.Employee, error)
}
