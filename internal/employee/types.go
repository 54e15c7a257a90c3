package employee

import (
	"time"

	"hr-agent-system/internal/model"
)

// StandardEntitlement is the annual leave allowance in days.
const StandardEntitlement = 20

// --- Employee Domain Model ---

// Employee is one row of the record store plus its leave history.
type Employee struct {
	ID           string
	Name         string
	Department   string
	Role         model.Role
	Balance      int
	PasswordHash string
	// LeaveHistory holds YYYY-MM-DD dates in ascending order.
	LeaveHistory []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeavesTaken is the number of recorded leave days.
func (e Employee) LeavesTaken() int {
	return len(e.LeaveHistory)
}

// Email is the derived company address.
func (e Employee) Email() string {
	return emailFor(e.ID)
}

// DepartmentSummary aggregates one department.
type DepartmentSummary struct {
	Name         string
	Headcount    int
	TotalBalance int
	TotalTaken   int
}

func (d DepartmentSummary) AverageBalance() float64 {
	if d.Headcount == 0 {
		return 0
	}
	return float64(d.TotalBalance) / float64(d.Headcount)
}

// --- UseCase Inputs ---

type ListInput struct {
	Department string
	Query      string
	Limit      int
	Offset     int
}

type CreateInput struct {
	ID           string
	Name         string
	Department   string
	Role         model.Role
	Balance      int
	Password     string
	LeaveHistory []string
}

type ApplyLeaveInput struct {
	EmployeeID string
	Dates      []string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Employees []Employee
	Total     int
	Limit     int
	Offset    int
}

type ApplyLeaveOutput struct {
	Employee Employee
	Applied  []string
}
