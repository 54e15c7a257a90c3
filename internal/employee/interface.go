package employee

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Departments(ctx context.Context) ([]DepartmentSummary, error)

	// Leave
	ApplyLeave(ctx context.Context, input ApplyLeaveInput) (ApplyLeaveOutput, error)

	// Provisioning
	Create(ctx context.Context, input CreateInput) (Employee, error)
}
