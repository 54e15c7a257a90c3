package employee

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrNoLeaveDates     = errors.New("no leave dates given")
	ErrInvalidLeaveDate = errors.New("invalid leave date")
)

// LeaveConflictError lists requested dates that are already booked.
type LeaveConflictError struct {
	Dates []string
}

func (e *LeaveConflictError) Error() string {
	return fmt.Sprintf("leave already recorded for %s", strings.Join(e.Dates, ", "))
}

// InsufficientBalanceError reports a request larger than the remaining balance.
type InsufficientBalanceError struct {
	Requested int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: requested %d, available %d", e.Requested, e.Available)
}

// Shortfall is how many days the request exceeds the balance.
func (e *InsufficientBalanceError) Shortfall() int {
	return e.Requested - e.Available
}
