package handlers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	employeeIDPattern = regexp.MustCompile(`(?i)\bE\d{3,}\b`)
	datePattern       = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
)

// extractEmployeeID returns the first employee id in q, upper-cased, or "".
func extractEmployeeID(q string) string {
	return employee.NormalizeID(employeeIDPattern.FindString(q))
}

// extractDates returns every YYYY-MM-DD token in q, de-duplicated in order.
func extractDates(q string) []string {
	matches := datePattern.FindAllString(q, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// targetID resolves whose records a request is about. Non-HR callers may
// only address themselves.
func targetID(req agent.Request) (string, error) {
	caller := employee.NormalizeID(req.CallerID)
	id := extractEmployeeID(req.Query)
	if id == "" {
		id = caller
	}
	if !req.Role.IsHR() && id != caller {
		return "", agent.ErrAccessDenied
	}
	return id, nil
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// loadEmployee returns found=false with a nil error when id does not exist.
func loadEmployee(ctx context.Context, dir Directory, id string) (employee.Employee, bool, error) {
	e, err := dir.Detail(ctx, id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, false, nil
	}
	if err != nil {
		return employee.Employee{}, false, err
	}
	return e, true, nil
}

func notFoundText(id string) string {
	if id == "" {
		return "I couldn't tell which employee you mean. Please include an employee ID such as E003."
	}
	return fmt.Sprintf("Employee %s was not found.", id)
}

// allEmployees lists everyone, ordered by id.
func allEmployees(ctx context.Context, dir Directory) ([]employee.Employee, error) {
	out, err := dir.List(ctx, employee.ListInput{})
	if err != nil {
		return nil, err
	}
	return out.Employees, nil
}

// datesDesc returns a descending copy of dates.
func datesDesc(dates []string) []string {
	out := append([]string(nil), dates...)
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// utilization is taken/(taken+balance) as a percentage.
func utilization(taken, balance int) float64 {
	if taken+balance == 0 {
		return 0
	}
	return float64(taken) / float64(taken+balance) * 100
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
