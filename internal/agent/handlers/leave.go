package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/datemath"
	"hr-agent-system/pkg/gcalendar"
	"hr-agent-system/pkg/log"
)

type leaveHandler struct {
	l          log.Logger
	dir        Directory
	cal        Calendar
	calendarID string
	loc        *time.Location
	dates      *datemath.Parser
	now        func() time.Time
}

func (h *leaveHandler) Name() string {
	return string(router.HandlerLeave)
}

func (h *leaveHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	id, err := targetID(req)
	if err != nil {
		return "", err
	}

	switch req.Category {
	case model.CategoryLeaveApplication:
		return h.apply(ctx, id, req.Query)
	case model.CategoryLeaveHistory:
		return h.history(ctx, id)
	default:
		if strings.Contains(strings.ToLower(req.Query), "entitlement") {
			return h.entitlement(ctx, id)
		}
		return h.balance(ctx, id)
	}
}

func (h *leaveHandler) balance(ctx context.Context, id string) (string, error) {
	e, found, err := loadEmployee(ctx, h.dir, id)
	if err != nil {
		h.l.Errorf(ctx, "handlers.leave.balance: %v", err)
		return "", err
	}
	if !found {
		return notFoundText(id), nil
	}

	return fmt.Sprintf("**Leave Balance for %s (%s)**\nCurrent Balance: **%d days**\nStandard Entitlement: %d days annually",
		e.Name, e.ID, e.Balance, employee.StandardEntitlement), nil
}

func (h *leaveHandler) entitlement(ctx context.Context, id string) (string, error) {
	e, found, err := loadEmployee(ctx, h.dir, id)
	if err != nil {
		h.l.Errorf(ctx, "handlers.leave.entitlement: %v", err)
		return "", err
	}
	if !found {
		return notFoundText(id), nil
	}

	used := e.LeavesTaken()
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Leave Entitlement for %s (%s)**\n\n", e.Name, e.ID)
	fmt.Fprintf(&sb, "Annual Entitlement: %d days\n", employee.StandardEntitlement)
	fmt.Fprintf(&sb, "Current Balance: %d days\n", e.Balance)
	fmt.Fprintf(&sb, "Used This Period: %d days\n", used)
	fmt.Fprintf(&sb, "Theoretical Total: %d days\n\n", e.Balance+used)
	fmt.Fprintf(&sb, "Standard company policy provides %d days annual leave.", employee.StandardEntitlement)
	return sb.String(), nil
}

func (h *leaveHandler) history(ctx context.Context, id string) (string, error) {
	e, found, err := loadEmployee(ctx, h.dir, id)
	if err != nil {
		h.l.Errorf(ctx, "handlers.leave.history: %v", err)
		return "", err
	}
	if !found {
		return notFoundText(id), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Leave History for %s (%s)**\n", e.Name, e.ID)
	if len(e.LeaveHistory) == 0 {
		sb.WriteString("No leave records found.")
		return sb.String(), nil
	}
	fmt.Fprintf(&sb, "Total Days Taken: **%d days**\n", len(e.LeaveHistory))

	byYear := make(map[string][]string)
	for _, d := range datesDesc(e.LeaveHistory) {
		year := "Unknown"
		if i := strings.IndexByte(d, '-'); i > 0 {
			year = d[:i]
		}
		byYear[year] = append(byYear[year], d)
	}
	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	for _, y := range years {
		fmt.Fprintf(&sb, "\n**%s:**\n", y)
		for _, d := range byYear[y] {
			fmt.Fprintf(&sb, "  - %s\n", d)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (h *leaveHandler) apply(ctx context.Context, id, query string) (string, error) {
	dates := extractDates(query)
	if len(dates) == 0 {
		dates = h.dates.Extract(query, h.now())
	}
	if len(dates) == 0 {
		return "Please specify the leave dates in YYYY-MM-DD format, for example: apply for leave on 2025-08-14.", nil
	}

	e, found, err := loadEmployee(ctx, h.dir, id)
	if err != nil {
		h.l.Errorf(ctx, "handlers.leave.apply: %v", err)
		return "", err
	}
	if !found {
		return notFoundText(id), nil
	}

	out, err := h.dir.ApplyLeave(ctx, employee.ApplyLeaveInput{EmployeeID: id, Dates: dates})
	if err != nil {
		var conflict *employee.LeaveConflictError
		var short *employee.InsufficientBalanceError
		switch {
		case errors.As(err, &conflict):
			return fmt.Sprintf("**Leave Conflicts Detected for %s**\nThe following dates are already booked:\n- %s",
				e.Name, strings.Join(conflict.Dates, "\n- ")), nil
		case errors.As(err, &short):
			return fmt.Sprintf("**Insufficient Leave Balance**\n%s (%s)\nCurrent Balance: %d days\nRequested: %d days\nYou need %d more days",
				e.Name, e.ID, short.Available, short.Requested, short.Shortfall()), nil
		case errors.Is(err, employee.ErrInvalidLeaveDate):
			return "One or more dates are not valid calendar dates. Please use YYYY-MM-DD.", nil
		case errors.Is(err, employee.ErrEmployeeNotFound):
			return notFoundText(id), nil
		}
		h.l.Errorf(ctx, "handlers.leave.apply ApplyLeave: %v", err)
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("**Leave Application Approved**\n")
	fmt.Fprintf(&sb, "%s (%s)\n", out.Employee.Name, out.Employee.ID)
	fmt.Fprintf(&sb, "Dates: %s\n", strings.Join(out.Applied, ", "))
	fmt.Fprintf(&sb, "Days Used: %d\n", len(out.Applied))
	fmt.Fprintf(&sb, "Remaining Balance: **%d days**", out.Employee.Balance)

	if h.cal != nil {
		added := h.syncCalendar(ctx, out.Employee, out.Applied)
		fmt.Fprintf(&sb, "\nCalendar: %s added", plural(added, "event"))
	}
	return sb.String(), nil
}

// syncCalendar creates one all-day event per date, skipping dates that already
// have an event for this employee. Failures are logged and never fail the
// application.
func (h *leaveHandler) syncCalendar(ctx context.Context, e employee.Employee, dates []string) int {
	added := 0
	for _, d := range dates {
		day, err := time.ParseInLocation(gcalendar.DateLayout, d, h.loc)
		if err != nil {
			continue
		}

		existing, err := h.cal.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: h.calendarID,
			EmployeeID: e.ID,
			TimeMin:    day,
			TimeMax:    day.AddDate(0, 0, 1),
			MaxResults: 1,
		})
		if err != nil {
			h.l.Warnf(ctx, "handlers.leave.syncCalendar ListEvents %s %s: %v", e.ID, d, err)
			continue
		}
		if len(existing) > 0 {
			continue
		}

		if _, err := h.cal.CreateLeaveEvent(ctx, gcalendar.LeaveEventRequest{
			CalendarID:   h.calendarID,
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Date:         d,
			Description:  fmt.Sprintf("Approved leave for %s (%s), %s department", e.Name, e.ID, e.Department),
		}); err != nil {
			h.l.Warnf(ctx, "handlers.leave.syncCalendar CreateLeaveEvent %s %s: %v", e.ID, d, err)
			continue
		}
		added++
	}
	return added
}
