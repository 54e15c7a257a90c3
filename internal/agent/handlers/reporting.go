package handlers

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/log"
)

const (
	lowBalanceThreshold = 5
	topLeaveTakers      = 5
)

var lowWordPattern = regexp.MustCompile(`\blow\b`)

// balanceBuckets are inclusive upper bounds; the last bucket is open-ended.
var balanceBuckets = []struct {
	label string
	max   int
}{
	{"0-5", 5},
	{"6-10", 10},
	{"11-15", 15},
	{"16-20", 20},
	{"20+", -1},
}

type reportingHandler struct {
	l   log.Logger
	dir Directory
	now func() time.Time
}

func (h *reportingHandler) Name() string {
	return string(router.HandlerReporting)
}

// snapshot is one consistent-enough read of the directory.
type snapshot struct {
	employees   []employee.Employee
	departments []employee.DepartmentSummary
}

// load fetches employees and department aggregates concurrently.
func load(ctx context.Context, dir Directory) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.employees, err = allEmployees(gctx, dir)
		return err
	})
	g.Go(func() error {
		var err error
		snap.departments, err = dir.Departments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (h *reportingHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	snap, err := load(ctx, h.dir)
	if err != nil {
		h.l.Errorf(ctx, "handlers.reporting.Handle load: %v", err)
		return "", err
	}
	if len(snap.employees) == 0 {
		return "No employee records are available for reporting.", nil
	}

	q := strings.ToLower(req.Query)
	switch req.Category {
	case model.CategoryEmployeeOverview:
		return h.overview(snap), nil
	case model.CategoryDepartmentStats:
		if dept, ok := mentionedDepartment(q, snap.departments); ok {
			return h.departmentReport(dept, snap.employees), nil
		}
		return h.allDepartments(snap.departments), nil
	default:
		switch {
		case lowWordPattern.MatchString(q):
			return h.lowBalance(snap.employees), nil
		case containsAny(q, "overview", "all employees"):
			return h.overview(snap), nil
		}
		return h.leaveStatistics(snap.employees), nil
	}
}

func (h *reportingHandler) header(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "**%s**\nGenerated: %s\n\n", title, h.now().Format(timestampLayout))
}

func (h *reportingHandler) overview(snap snapshot) string {
	var sb strings.Builder
	h.header(&sb, "EMPLOYEE OVERVIEW")

	totalBalance, totalTaken := 0, 0
	for _, e := range snap.employees {
		totalBalance += e.Balance
		totalTaken += e.LeavesTaken()
	}
	n := len(snap.employees)

	sb.WriteString("**ORGANIZATION SUMMARY**\n")
	fmt.Fprintf(&sb, "- Total Employees: **%d**\n", n)
	fmt.Fprintf(&sb, "- Departments: **%d**\n", len(snap.departments))
	fmt.Fprintf(&sb, "- Total Leave Balance: **%d days**\n", totalBalance)
	fmt.Fprintf(&sb, "- Total Leaves Taken: **%d days**\n", totalTaken)
	fmt.Fprintf(&sb, "- Average Balance per Employee: **%.1f days**\n\n", float64(totalBalance)/float64(n))

	sb.WriteString("**DEPARTMENT BREAKDOWN**\n")
	for _, d := range snap.departments {
		fmt.Fprintf(&sb, "- **%s**: %s, balance %d days, taken %d days, avg balance %.1f days\n",
			d.Name, plural(d.Headcount, "employee"), d.TotalBalance, d.TotalTaken, d.AverageBalance())
	}

	sb.WriteString("\n**ALL EMPLOYEES**\n")
	for _, e := range snap.employees {
		fmt.Fprintf(&sb, "- **%s** (%s), %s, %s: balance %d days, taken %d days\n",
			e.Name, e.ID, e.Department, e.Role, e.Balance, e.LeavesTaken())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// mentionedDepartment finds a known department name inside q.
func mentionedDepartment(q string, deps []employee.DepartmentSummary) (string, bool) {
	for _, d := range deps {
		if d.Name != "" && strings.Contains(q, strings.ToLower(d.Name)) {
			return d.Name, true
		}
	}
	return "", false
}

func (h *reportingHandler) departmentReport(dept string, all []employee.Employee) string {
	var members []employee.Employee
	for _, e := range all {
		if strings.EqualFold(e.Department, dept) {
			members = append(members, e)
		}
	}

	var sb strings.Builder
	h.header(&sb, strings.ToUpper(dept)+" DEPARTMENT REPORT")
	if len(members) == 0 {
		sb.WriteString("No employees found in this department.")
		return sb.String()
	}

	totalBalance, totalTaken := 0, 0
	for _, e := range members {
		totalBalance += e.Balance
		totalTaken += e.LeavesTaken()
	}
	n := float64(len(members))

	sb.WriteString("**SUMMARY**\n")
	fmt.Fprintf(&sb, "- Total Employees: **%d**\n", len(members))
	fmt.Fprintf(&sb, "- Total Leave Balance: **%d days**\n", totalBalance)
	fmt.Fprintf(&sb, "- Average Balance: **%.1f days**\n", float64(totalBalance)/n)
	fmt.Fprintf(&sb, "- Total Leaves Taken: **%d days**\n", totalTaken)
	fmt.Fprintf(&sb, "- Average Taken: **%.1f days**\n", float64(totalTaken)/n)
	fmt.Fprintf(&sb, "- Utilization: **%.1f%%**\n\n", utilization(totalTaken, totalBalance))

	sb.WriteString("**MEMBERS**\n")
	for _, e := range members {
		fmt.Fprintf(&sb, "- **%s** (%s): role %s, balance %d days, taken %d days, utilization %.1f%%\n",
			e.Name, e.ID, e.Role, e.Balance, e.LeavesTaken(), utilization(e.LeavesTaken(), e.Balance))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *reportingHandler) allDepartments(deps []employee.DepartmentSummary) string {
	var sb strings.Builder
	h.header(&sb, "ALL DEPARTMENTS REPORT")
	for _, d := range deps {
		avgTaken := 0.0
		if d.Headcount > 0 {
			avgTaken = float64(d.TotalTaken) / float64(d.Headcount)
		}
		fmt.Fprintf(&sb, "**%s DEPARTMENT**\n", strings.ToUpper(d.Name))
		fmt.Fprintf(&sb, "- Employees: %d\n", d.Headcount)
		fmt.Fprintf(&sb, "- Total Balance: %d days\n", d.TotalBalance)
		fmt.Fprintf(&sb, "- Avg Balance: %.1f days\n", d.AverageBalance())
		fmt.Fprintf(&sb, "- Total Taken: %d days\n", d.TotalTaken)
		fmt.Fprintf(&sb, "- Avg Taken: %.1f days\n\n", avgTaken)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *reportingHandler) leaveStatistics(employees []employee.Employee) string {
	var sb strings.Builder
	h.header(&sb, "LEAVE STATISTICS REPORT")

	n := len(employees)
	totalBalance, totalTaken := 0, 0
	counts := make([]int, len(balanceBuckets))
	for _, e := range employees {
		totalBalance += e.Balance
		totalTaken += e.LeavesTaken()
		counts[bucketOf(e.Balance)]++
	}

	sb.WriteString("**OVERALL**\n")
	fmt.Fprintf(&sb, "- Total Employees: %d\n", n)
	fmt.Fprintf(&sb, "- Total Leave Balance: %d days\n", totalBalance)
	fmt.Fprintf(&sb, "- Average Balance: %.1f days per employee\n", float64(totalBalance)/float64(n))
	fmt.Fprintf(&sb, "- Total Leaves Taken: %d days\n", totalTaken)
	fmt.Fprintf(&sb, "- Average Taken: %.1f days per employee\n", float64(totalTaken)/float64(n))
	fmt.Fprintf(&sb, "- Overall Utilization: %.1f%%\n\n", utilization(totalTaken, totalBalance))

	sb.WriteString("**LEAVE BALANCE DISTRIBUTION**\n")
	for i, b := range balanceBuckets {
		fmt.Fprintf(&sb, "- %s days: %d employees (%.1f%%)\n", b.label, counts[i], float64(counts[i])/float64(n)*100)
	}

	takers := append([]employee.Employee(nil), employees...)
	sort.SliceStable(takers, func(i, j int) bool {
		return takers[i].LeavesTaken() > takers[j].LeavesTaken()
	})
	if len(takers) > topLeaveTakers {
		takers = takers[:topLeaveTakers]
	}
	sb.WriteString("\n**TOP LEAVE UTILIZERS**\n")
	for i, e := range takers {
		fmt.Fprintf(&sb, "%d. **%s** (%s): %d days\n", i+1, e.Name, e.ID, e.LeavesTaken())
	}

	low := lowBalanceEmployees(employees)
	if len(low) > 0 {
		sb.WriteString("\n**LOW BALANCE ALERTS**\n")
		fmt.Fprintf(&sb, "%s with %d days or fewer remaining:\n", plural(len(low), "employee"), lowBalanceThreshold)
		for _, e := range low {
			fmt.Fprintf(&sb, "- **%s** (%s): %d days\n", e.Name, e.ID, e.Balance)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *reportingHandler) lowBalance(employees []employee.Employee) string {
	var sb strings.Builder
	h.header(&sb, fmt.Sprintf("LOW LEAVE BALANCE REPORT (<= %d days)", lowBalanceThreshold))

	low := lowBalanceEmployees(employees)
	if len(low) == 0 {
		fmt.Fprintf(&sb, "Good news: no employees currently have a leave balance of %d days or fewer.", lowBalanceThreshold)
		return sb.String()
	}

	sort.SliceStable(low, func(i, j int) bool { return low[i].Balance < low[j].Balance })
	fmt.Fprintf(&sb, "**ALERT: %s need attention**\n\n", plural(len(low), "employee"))
	for _, e := range low {
		urgency, action := lowBalanceUrgency(e.Balance)
		fmt.Fprintf(&sb, "%s **%s** (%s)\n", urgency, e.Name, e.ID)
		fmt.Fprintf(&sb, "- Department: %s\n", e.Department)
		fmt.Fprintf(&sb, "- Current Balance: **%d days**\n", e.Balance)
		fmt.Fprintf(&sb, "- Leaves Taken: %d days\n", e.LeavesTaken())
		fmt.Fprintf(&sb, "- Recommended Action: %s\n\n", action)
	}

	sb.WriteString("**RECOMMENDED ACTIONS**\n")
	sb.WriteString("- Review annual leave refresh policies\n")
	sb.WriteString("- Consider bonus leave allocation\n")
	sb.WriteString("- Schedule individual discussions\n")
	sb.WriteString("- Monitor leave patterns going forward")
	return sb.String()
}

func lowBalanceUrgency(balance int) (urgency, action string) {
	switch {
	case balance == 0:
		return "CRITICAL", "Immediate leave refresh needed"
	case balance <= 2:
		return "HIGH", "Schedule leave refresh soon"
	default:
		return "MEDIUM", "Monitor for upcoming refresh"
	}
}

func lowBalanceEmployees(employees []employee.Employee) []employee.Employee {
	var low []employee.Employee
	for _, e := range employees {
		if e.Balance <= lowBalanceThreshold {
			low = append(low, e)
		}
	}
	return low
}

func bucketOf(balance int) int {
	for i, b := range balanceBuckets {
		if b.max >= 0 && balance <= b.max {
			return i
		}
	}
	return len(balanceBuckets) - 1
}
