package usecase

import (
	"context"
	"time"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubRepo is an in-memory repository.Repository.
type stubRepo struct {
	employees map[string]employee.Employee
	applyErr  error
	// beforeApply runs first in ApplyLeave, standing in for a concurrent writer.
	beforeApply func(s *stubRepo)
	applied   []repo.ApplyLeaveOptions
	upserted  []repo.UpsertEmployeeOptions
}

func newStubRepo(es ...employee.Employee) *stubRepo {
	m := make(map[string]employee.Employee, len(es))
	for _, e := range es {
		m[e.ID] = e
	}
	return &stubRepo{employees: m}
}

func (s *stubRepo) UpsertEmployee(ctx context.Context, opt repo.UpsertEmployeeOptions) (employee.Employee, error) {
	s.upserted = append(s.upserted, opt)
	e := employee.Employee{
		ID: opt.ID, Name: opt.Name, Department: opt.Department, Role: opt.Role,
		Balance: opt.Balance, PasswordHash: opt.PasswordHash, LeaveHistory: opt.LeaveHistory,
	}
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubRepo) GetOneEmployee(ctx context.Context, opt repo.GetOneEmployeeOptions) (employee.Employee, error) {
	return s.employees[opt.ID], nil
}

func (s *stubRepo) ListEmployees(ctx context.Context, opt repo.ListEmployeesOptions) ([]employee.Employee, int, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (s *stubRepo) ListDepartments(ctx context.Context) ([]employee.DepartmentSummary, error) {
	return nil, nil
}

func (s *stubRepo) ApplyLeave(ctx context.Context, opt repo.ApplyLeaveOptions) (employee.Employee, error) {
	if s.beforeApply != nil {
		s.beforeApply(s)
	}
	if s.applyErr != nil {
		return employee.Employee{}, s.applyErr
	}
	s.applied = append(s.applied, opt)
	e := s.employees[opt.EmployeeID]
	e.Balance -= len(opt.Dates)
	e.LeaveHistory = append(append([]string(nil), e.LeaveHistory...), opt.Dates...)
	s.employees[e.ID] = e
	return e, nil
}

func newTestUseCase(r *stubRepo) *implUseCase {
	uc := New(r, &mockLogger{})
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}
