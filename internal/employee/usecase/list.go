package usecase

import (
	"context"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
)

// List returns a page of employees. Limit <= 0 returns everyone.
func (uc *implUseCase) List(ctx context.Context, input employee.ListInput) (employee.ListOutput, error) {
	employees, total, err := uc.repo.ListEmployees(ctx, repo.ListEmployeesOptions{
		Department: input.Department,
		Query:      input.Query,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEmployees: %v", err)
		return employee.ListOutput{}, err
	}

	return employee.ListOutput{
		Employees: employees,
		Total:     total,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}, nil
}

// Departments returns per-department aggregates sorted by name.
func (uc *implUseCase) Departments(ctx context.Context) ([]employee.DepartmentSummary, error) {
	deps, err := uc.repo.ListDepartments(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Departments ListDepartments: %v", err)
		return nil, err
	}
	return deps, nil
}
