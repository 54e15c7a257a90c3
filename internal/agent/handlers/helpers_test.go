package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/gcalendar"
)

// stubDirectory is an in-memory Directory with the same semantics as the use case.
type stubDirectory struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	err       error
}

func newStubDirectory(es ...employee.Employee) *stubDirectory {
	d := &stubDirectory{employees: make(map[string]employee.Employee)}
	for _, e := range es {
		d.employees[e.ID] = e
	}
	return d
}

func (d *stubDirectory) Detail(ctx context.Context, id string) (employee.Employee, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return employee.Employee{}, d.err
	}
	e, ok := d.employees[employee.NormalizeID(id)]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (d *stubDirectory) List(ctx context.Context, input employee.ListInput) (employee.ListOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return employee.ListOutput{}, d.err
	}
	q := strings.ToLower(input.Query)
	var out []employee.Employee
	for _, e := range d.employees {
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.ID), q) &&
			!strings.Contains(strings.ToLower(e.Department), q) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return employee.ListOutput{Employees: out, Total: len(out)}, nil
}

func (d *stubDirectory) Departments(ctx context.Context) ([]employee.DepartmentSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	agg := make(map[string]*employee.DepartmentSummary)
	for _, e := range d.employees {
		s, ok := agg[e.Department]
		if !ok {
			s = &employee.DepartmentSummary{Name: e.Department}
			agg[e.Department] = s
		}
		s.Headcount++
		s.TotalBalance += e.Balance
		s.TotalTaken += e.LeavesTaken()
	}
	out := make([]employee.DepartmentSummary, 0, len(agg))
	for _, s := range agg {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (d *stubDirectory) ApplyLeave(ctx context.Context, input employee.ApplyLeaveInput) (employee.ApplyLeaveOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.employees[input.EmployeeID]
	if !ok {
		return employee.ApplyLeaveOutput{}, employee.ErrEmployeeNotFound
	}
	booked := make(map[string]bool)
	for _, h := range e.LeaveHistory {
		booked[h] = true
	}
	var conflicts []string
	for _, dt := range input.Dates {
		if !employee.ValidDate(dt) {
			return employee.ApplyLeaveOutput{}, employee.ErrInvalidLeaveDate
		}
		if booked[dt] {
			conflicts = append(conflicts, dt)
		}
	}
	if len(conflicts) > 0 {
		return employee.ApplyLeaveOutput{}, &employee.LeaveConflictError{Dates: conflicts}
	}
	if e.Balance < len(input.Dates) {
		return employee.ApplyLeaveOutput{}, &employee.InsufficientBalanceError{Requested: len(input.Dates), Available: e.Balance}
	}
	e.Balance -= len(input.Dates)
	e.LeaveHistory = append(append([]string(nil), e.LeaveHistory...), input.Dates...)
	sort.Strings(e.LeaveHistory)
	d.employees[e.ID] = e
	return employee.ApplyLeaveOutput{Employee: e, Applied: input.Dates}, nil
}

type stubCalendar struct {
	mu       sync.Mutex
	existing map[string]bool // employeeID|date
	created  []gcalendar.LeaveEventRequest
	failList bool
}

func (c *stubCalendar) CreateLeaveEvent(ctx context.Context, req gcalendar.LeaveEventRequest) (*gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created = append(c.created, req)
	return &gcalendar.Event{ID: "evt-" + req.Date, Date: req.Date, EmployeeID: req.EmployeeID}, nil
}

func (c *stubCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failList {
		return nil, errors.New("calendar unavailable")
	}
	date := req.TimeMin.Format(gcalendar.DateLayout)
	if c.existing[req.EmployeeID+"|"+date] {
		return []gcalendar.Event{{ID: "existing", Date: date, EmployeeID: req.EmployeeID}}, nil
	}
	return nil, nil
}

var fixedNow = func() time.Time { return time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC) }

func fixtureEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "E001", Name: "Kalhar Dasanayaka", Department: "HR", Role: model.RoleHR, Balance: 18,
			LeaveHistory: []string{"2024-12-25", "2025-01-01"}},
		{ID: "E002", Name: "Anjana Perera", Department: "HR", Role: model.RoleHR, Balance: 20},
		{ID: "E003", Name: "Nimal Silva", Department: "IT", Role: model.RoleEmployee, Balance: 12,
			LeaveHistory: []string{"2024-03-10", "2025-02-14", "2025-03-01"}},
		{ID: "E004", Name: "Sahan Fernando", Department: "IT", Role: model.RoleEmployee, Balance: 2,
			LeaveHistory: []string{"2025-01-05", "2025-01-06", "2025-01-07", "2025-01-08"}},
		{ID: "E012", Name: "Dilini Jayasuriya", Department: "Marketing", Role: model.RoleEmployee, Balance: 0,
			LeaveHistory: []string{"2025-04-01", "2025-04-02"}},
	}
}

func hrRequest(q string, c model.TaskCategory) agent.Request {
	return agent.Request{Query: q, CallerID: "E001", Caller: "Kalhar", Role: model.RoleHR, Category: c}
}

func employeeRequest(q string, c model.TaskCategory) agent.Request {
	return agent.Request{Query: q, CallerID: "E003", Caller: "Nimal", Role: model.RoleEmployee, Category: c}
}
