// Package handlers implements the specialist agents the supervisor dispatches to.
package handlers

import (
	"context"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/pkg/datemath"
	"hr-agent-system/pkg/gcalendar"
	"hr-agent-system/pkg/log"
)

// Directory is the part of the employee use case the handlers need.
type Directory interface {
	Detail(ctx context.Context, id string) (employee.Employee, error)
	List(ctx context.Context, input employee.ListInput) (employee.ListOutput, error)
	Departments(ctx context.Context) ([]employee.DepartmentSummary, error)
	ApplyLeave(ctx context.Context, input employee.ApplyLeaveInput) (employee.ApplyLeaveOutput, error)
}

// Calendar mirrors approved leave into a shared calendar.
type Calendar interface {
	CreateLeaveEvent(ctx context.Context, req gcalendar.LeaveEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Options configures the handler set. Calendar may be nil.
type Options struct {
	Directory  Directory
	Calendar   Calendar
	CalendarID string
	Location   *time.Location
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// NewLeave returns leave_agent.
func NewLeave(l log.Logger, opt Options) agent.Handler {
	opt = opt.withDefaults()
	return &leaveHandler{
		l:          l,
		dir:        opt.Directory,
		cal:        opt.Calendar,
		calendarID: opt.CalendarID,
		loc:        opt.Location,
		dates:      datemath.NewParserIn(opt.Location),
		now:        opt.Now,
	}
}

// NewEmployee returns employee_agent, which also answers small talk.
func NewEmployee(l log.Logger, opt Options) agent.Handler {
	opt = opt.withDefaults()
	return &employeeHandler{
		l:    l,
		dir:  opt.Directory,
		conv: NewConversation(opt.Now),
	}
}

// NewReporting returns reporting_agent.
func NewReporting(l log.Logger, opt Options) agent.Handler {
	opt = opt.withDefaults()
	return &reportingHandler{l: l, dir: opt.Directory, now: opt.Now}
}

// NewAnalysis returns analysis_agent.
func NewAnalysis(l log.Logger, opt Options) agent.Handler {
	opt = opt.withDefaults()
	return &analysisHandler{l: l, dir: opt.Directory, now: opt.Now}
}

// RegisterAll registers the four specialists on reg.
func RegisterAll(reg *agent.Registry, l log.Logger, opt Options) error {
	for _, h := range []agent.Handler{
		NewLeave(l, opt),
		NewEmployee(l, opt),
		NewReporting(l, opt),
		NewAnalysis(l, opt),
	} {
		if err := reg.Register(h); err != nil {
			return err
		}
	}
	return nil
}
