package usecase

import (
	"context"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
)

// Detail retrieves a single employee by id. Returns ErrEmployeeNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (employee.Employee, error) {
	id = employee.NormalizeID(id)
	if id == "" {
		return employee.Employee{}, employee.ErrInvalidPayload
	}

	e, err := uc.repo.GetOneEmployee(ctx, repo.GetOneEmployeeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEmployee: %v", err)
		return employee.Employee{}, err
	}
	if e.ID == "" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}
