package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
)

// Create inserts or replaces an employee. A non-empty password is stored as a bcrypt hash.
func (uc *implUseCase) Create(ctx context.Context, input employee.CreateInput) (employee.Employee, error) {
	id := employee.NormalizeID(input.ID)
	if id == "" || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Department) == "" || input.Balance < 0 {
		return employee.Employee{}, employee.ErrInvalidPayload
	}
	for _, d := range input.LeaveHistory {
		if !employee.ValidDate(d) {
			return employee.Employee{}, employee.ErrInvalidLeaveDate
		}
	}

	var hash string
	if input.Password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GenerateFromPassword: %v", err)
			return employee.Employee{}, err
		}
		hash = string(b)
	}

	e, err := uc.repo.UpsertEmployee(ctx, repo.UpsertEmployeeOptions{
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Department:   strings.TrimSpace(input.Department),
		Role:         input.Role,
		Balance:      input.Balance,
		PasswordHash: hash,
		LeaveHistory: uniqueSorted(input.LeaveHistory),
		Now:          uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create UpsertEmployee: %v", err)
		return employee.Employee{}, err
	}
	return e, nil
}
