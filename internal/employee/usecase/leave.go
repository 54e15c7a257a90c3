package usecase

import (
	"context"
	"errors"
	"sort"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
)

// ApplyLeave books the given dates. Validation order: dates present and well formed,
// employee exists, no date already recorded, balance covers the request.
func (uc *implUseCase) ApplyLeave(ctx context.Context, input employee.ApplyLeaveInput) (employee.ApplyLeaveOutput, error) {
	dates := uniqueSorted(input.Dates)
	if len(dates) == 0 {
		return employee.ApplyLeaveOutput{}, employee.ErrNoLeaveDates
	}
	for _, d := range dates {
		if !employee.ValidDate(d) {
			return employee.ApplyLeaveOutput{}, employee.ErrInvalidLeaveDate
		}
	}

	e, err := uc.Detail(ctx, input.EmployeeID)
	if err != nil {
		return employee.ApplyLeaveOutput{}, err
	}

	if conflicts := conflictingDates(e.LeaveHistory, dates); len(conflicts) > 0 {
		return employee.ApplyLeaveOutput{}, &employee.LeaveConflictError{Dates: conflicts}
	}
	if len(dates) > e.Balance {
		return employee.ApplyLeaveOutput{}, &employee.InsufficientBalanceError{Requested: len(dates), Available: e.Balance}
	}

	updated, err := uc.repo.ApplyLeave(ctx, repo.ApplyLeaveOptions{
		EmployeeID: e.ID,
		Dates:      dates,
		Now:        uc.now(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrBalanceChanged) {
			return employee.ApplyLeaveOutput{}, &employee.InsufficientBalanceError{Requested: len(dates), Available: e.Balance}
		}
		if errors.Is(err, repo.ErrDateTaken) {
			return employee.ApplyLeaveOutput{}, uc.lostDateRace(ctx, e.ID, dates)
		}
		uc.l.Errorf(ctx, "uc.ApplyLeave ApplyLeave: %v", err)
		return employee.ApplyLeaveOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ApplyLeave: %s booked %d day(s), balance %d", e.ID, len(dates), updated.Balance)
	return employee.ApplyLeaveOutput{Employee: updated, Applied: dates}, nil
}

// lostDateRace reports the dates a concurrent application booked first.
func (uc *implUseCase) lostDateRace(ctx context.Context, id string, dates []string) error {
	conflicts := dates
	if fresh, err := uc.Detail(ctx, id); err == nil {
		if c := conflictingDates(fresh.LeaveHistory, dates); len(c) > 0 {
			conflicts = c
		}
	}
	return &employee.LeaveConflictError{Dates: conflicts}
}

func conflictingDates(history, requested []string) []string {
	taken := make(map[string]struct{}, len(history))
	for _, d := range history {
		taken[d] = struct{}{}
	}
	var out []string
	for _, d := range requested {
		if _, ok := taken[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

func uniqueSorted(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
