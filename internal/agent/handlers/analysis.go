package handlers

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/stats"
)

const (
	patternTopN         = 3
	patternDeviation    = 3.0
	utilizationRankSize = 5
	outlierMinSample    = 4
	analysisMinSample   = 3
)

type analysisHandler struct {
	l   log.Logger
	dir Directory
	now func() time.Time
}

func (h *analysisHandler) Name() string {
	return string(router.HandlerAnalysis)
}

func (h *analysisHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	snap, err := load(ctx, h.dir)
	if err != nil {
		h.l.Errorf(ctx, "handlers.analysis.Handle load: %v", err)
		return "", err
	}
	if len(snap.employees) == 0 {
		return "No employee data is available for analysis.", nil
	}

	var sb strings.Builder
	q := strings.ToLower(req.Query)
	switch {
	case containsAny(q, "forecast", "prediction", "predict"):
		h.forecast(&sb, snap.employees)
	case containsAny(q, "utilization", "utilisation", "compare"):
		h.utilizationPatterns(&sb, snap.employees)
	case containsAny(q, "outlier", "anomal"):
		h.outliers(&sb, snap.employees)
	case containsAny(q, "pattern", "department"):
		h.departmentPatterns(&sb, snap.departments)
	default:
		h.trends(&sb, snap.employees)
	}

	sb.WriteString("\n\n")
	recommendations(&sb, snap.employees)
	return sb.String(), nil
}

func (h *analysisHandler) header(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "**%s**\nAnalysis Date: %s\n\n", title, h.now().Format(timestampLayout))
}

type orgTotals struct {
	n            int
	totalBalance int
	totalTaken   int
	balances     []float64
}

func totalsOf(employees []employee.Employee) orgTotals {
	t := orgTotals{n: len(employees), balances: make([]float64, len(employees))}
	for i, e := range employees {
		t.totalBalance += e.Balance
		t.totalTaken += e.LeavesTaken()
		t.balances[i] = float64(e.Balance)
	}
	return t
}

func (t orgTotals) avgBalance() float64 {
	if t.n == 0 {
		return 0
	}
	return float64(t.totalBalance) / float64(t.n)
}

func (t orgTotals) avgTaken() float64 {
	if t.n == 0 {
		return 0
	}
	return float64(t.totalTaken) / float64(t.n)
}

func (h *analysisHandler) trends(sb *strings.Builder, employees []employee.Employee) {
	h.header(sb, "LEAVE TREND ANALYSIS")
	t := totalsOf(employees)
	avg := stats.Mean(t.balances)
	stdev := stats.StdDev(t.balances)
	util := utilization(t.totalTaken, t.totalBalance)

	sb.WriteString("**KEY METRICS**\n")
	fmt.Fprintf(sb, "- Employees Analyzed: %d\n", t.n)
	fmt.Fprintf(sb, "- Average Balance: %.1f days\n", avg)
	fmt.Fprintf(sb, "- Median Balance: %.1f days\n", stats.Median(t.balances))
	fmt.Fprintf(sb, "- Balance Std Deviation: %.1f days\n", stdev)
	fmt.Fprintf(sb, "- Average Leaves Taken: %.1f days\n", t.avgTaken())
	fmt.Fprintf(sb, "- Overall Utilization: %.1f%%\n\n", util)

	sb.WriteString("**INSIGHTS**\n")
	var insights []string
	switch {
	case avg > 15:
		insights = append(insights, "High average balances: employees may be under-using leave, a burnout risk")
	case avg < 10:
		insights = append(insights, "Low average balances: an organization-wide leave refresh may be needed soon")
	}
	switch {
	case util > 60:
		insights = append(insights, "Strong leave utilization: employees are taking healthy time off")
	case util < 30:
		insights = append(insights, "Low leave utilization: consider encouraging employees to take time off")
	}
	if stdev > 5 {
		insights = append(insights, "Large variation in balances: leave usage is uneven across employees")
	}
	if len(insights) == 0 {
		insights = append(insights, "Leave balances and utilization are within healthy ranges")
	}
	for _, s := range insights {
		fmt.Fprintf(sb, "- %s\n", s)
	}
	trimTrailingNewline(sb)
}

func (h *analysisHandler) departmentPatterns(sb *strings.Builder, deps []employee.DepartmentSummary) {
	h.header(sb, "DEPARTMENT PATTERN ANALYSIS")
	if len(deps) == 0 {
		sb.WriteString("No department data available.")
		return
	}

	var orgBalance, orgTaken float64
	var headcount int
	for _, d := range deps {
		orgBalance += float64(d.TotalBalance)
		orgTaken += float64(d.TotalTaken)
		headcount += d.Headcount
	}
	orgAvgBalance := orgBalance / float64(max(headcount, 1))
	orgAvgTaken := orgTaken / float64(max(headcount, 1))

	avgTaken := func(d employee.DepartmentSummary) float64 {
		if d.Headcount == 0 {
			return 0
		}
		return float64(d.TotalTaken) / float64(d.Headcount)
	}

	ranked := func(title string, less func(a, b employee.DepartmentSummary) bool, value func(d employee.DepartmentSummary) string) {
		sorted := append([]employee.DepartmentSummary(nil), deps...)
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		if len(sorted) > patternTopN {
			sorted = sorted[:patternTopN]
		}
		fmt.Fprintf(sb, "**%s**\n", title)
		for i, d := range sorted {
			fmt.Fprintf(sb, "%d. %s: %s\n", i+1, d.Name, value(d))
		}
		sb.WriteString("\n")
	}

	ranked("LARGEST DEPARTMENTS",
		func(a, b employee.DepartmentSummary) bool { return a.Headcount > b.Headcount },
		func(d employee.DepartmentSummary) string { return plural(d.Headcount, "employee") })
	ranked("HIGHEST AVERAGE BALANCE",
		func(a, b employee.DepartmentSummary) bool { return a.AverageBalance() > b.AverageBalance() },
		func(d employee.DepartmentSummary) string { return fmt.Sprintf("%.1f days", d.AverageBalance()) })
	ranked("MOST LEAVE TAKEN",
		func(a, b employee.DepartmentSummary) bool { return avgTaken(a) > avgTaken(b) },
		func(d employee.DepartmentSummary) string { return fmt.Sprintf("%.1f days per employee", avgTaken(d)) })

	fmt.Fprintf(sb, "**PATTERNS** (organization average balance %.1f days)\n", orgAvgBalance)
	found := false
	for _, d := range deps {
		switch diff := d.AverageBalance() - orgAvgBalance; {
		case diff > patternDeviation:
			fmt.Fprintf(sb, "- %s holds %.1f days more than average: leave may be under-used\n", d.Name, diff)
			found = true
		case diff < -patternDeviation:
			fmt.Fprintf(sb, "- %s holds %.1f days less than average: check workload and refresh needs\n", d.Name, -diff)
			found = true
		}
		if avgTaken(d) > orgAvgTaken+2 {
			fmt.Fprintf(sb, "- %s shows high leave utilization (%.1f days per employee)\n", d.Name, avgTaken(d))
			found = true
		}
	}
	if !found {
		sb.WriteString("- Departments are closely aligned with the organization average\n")
	}
	trimTrailingNewline(sb)
}

func (h *analysisHandler) forecast(sb *strings.Builder, employees []employee.Employee) {
	h.header(sb, "PREDICTIVE INSIGHTS & FORECASTS")
	t := totalsOf(employees)
	total := float64(t.totalBalance)

	sb.WriteString("**CURRENT STATE**\n")
	fmt.Fprintf(sb, "- Total Leave Balance: %d days\n", t.totalBalance)
	fmt.Fprintf(sb, "- Average Balance: %.1f days\n", t.avgBalance())
	fmt.Fprintf(sb, "- Total Utilized: %d days\n\n", t.totalTaken)

	rate := utilization(t.totalTaken, t.totalBalance) / 100
	projected := total * rate * 0.5
	remaining := total - projected

	sb.WriteString("**PREDICTIVE SCENARIOS (Next 6 Months)**\n\n")
	sb.WriteString("**Scenario 1: Current Trends Continue**\n")
	fmt.Fprintf(sb, "- Projected Usage: %.0f days\n", projected)
	fmt.Fprintf(sb, "- Remaining Balance: %.0f days\n", remaining)
	fmt.Fprintf(sb, "- Risk Level: %s\n\n", forecastRisk(remaining, total))

	encouraged := total * math.Min(rate*1.5, 0.8) * 0.5
	sb.WriteString("**Scenario 2: Encouraged Leave Taking (+50%)**\n")
	fmt.Fprintf(sb, "- Projected Usage: %.0f days\n", encouraged)
	fmt.Fprintf(sb, "- Remaining Balance: %.0f days\n", total-encouraged)
	sb.WriteString("- Impact: Better work-life balance, potential refresh needed\n\n")

	atRisk, critical := 0, 0
	for _, e := range employees {
		if e.Balance <= lowBalanceThreshold {
			atRisk++
		}
		if e.Balance <= 2 {
			critical++
		}
	}
	sb.WriteString("**CRITICAL THRESHOLDS & ALERTS**\n")
	fmt.Fprintf(sb, "- Employees at Risk (<= 5 days): %d\n", atRisk)
	fmt.Fprintf(sb, "- Critical Risk (<= 2 days): %d\n", critical)
	if t.avgBalance() < 10 {
		sb.WriteString("- Organization-wide refresh recommended within 3 months")
	} else {
		sb.WriteString("- Healthy organizational leave reserves")
	}
}

// forecastRisk grades what is left after projected usage.
func forecastRisk(remaining, total float64) string {
	switch {
	case remaining > total*0.3:
		return "Low"
	case remaining > total*0.1:
		return "Medium"
	default:
		return "High"
	}
}

type utilizationRow struct {
	e    employee.Employee
	rate float64
}

func (h *analysisHandler) utilizationPatterns(sb *strings.Builder, employees []employee.Employee) {
	h.header(sb, "LEAVE UTILIZATION PATTERN ANALYSIS")

	rows := make([]utilizationRow, len(employees))
	var high, moderate, low int
	for i, e := range employees {
		rows[i] = utilizationRow{e: e, rate: utilization(e.LeavesTaken(), e.Balance)}
		switch {
		case rows[i].rate > 70:
			high++
		case rows[i].rate >= 30:
			moderate++
		default:
			low++
		}
	}
	n := float64(len(rows))

	sb.WriteString("**UTILIZATION CATEGORIES**\n")
	fmt.Fprintf(sb, "- High (>70%%): %d employees (%.1f%%)\n", high, float64(high)/n*100)
	fmt.Fprintf(sb, "- Moderate (30-70%%): %d employees (%.1f%%)\n", moderate, float64(moderate)/n*100)
	fmt.Fprintf(sb, "- Low (<30%%): %d employees (%.1f%%)\n\n", low, float64(low)/n*100)

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].rate > rows[j].rate })
	top := rows[:min(utilizationRankSize, len(rows))]
	sb.WriteString("**HIGHEST UTILIZATION**\n")
	for i, r := range top {
		fmt.Fprintf(sb, "%d. %s (%s): %.1f%%\n", i+1, r.e.Name, r.e.ID, r.rate)
	}

	sb.WriteString("\n**LOWEST UTILIZATION**\n")
	for i := 0; i < min(utilizationRankSize, len(rows)); i++ {
		r := rows[len(rows)-1-i]
		fmt.Fprintf(sb, "%d. %s (%s): %.1f%%\n", i+1, r.e.Name, r.e.ID, r.rate)
	}

	byDept := make(map[string][]float64)
	for _, r := range rows {
		byDept[r.e.Department] = append(byDept[r.e.Department], r.rate)
	}
	names := make([]string, 0, len(byDept))
	for d := range byDept {
		names = append(names, d)
	}
	sort.Strings(names)

	sb.WriteString("\n**DEPARTMENT AVERAGES**\n")
	best, bestRate := "", -1.0
	for _, d := range names {
		avg := stats.Mean(byDept[d])
		fmt.Fprintf(sb, "- %s: %.1f%%\n", d, avg)
		if avg > bestRate {
			best, bestRate = d, avg
		}
	}
	fmt.Fprintf(sb, "\nBest utilization: **%s** (%.1f%%)", best, bestRate)
}

func (h *analysisHandler) outliers(sb *strings.Builder, employees []employee.Employee) {
	h.header(sb, "OUTLIER & ANOMALY DETECTION")
	if len(employees) < analysisMinSample {
		sb.WriteString("Insufficient data for outlier analysis.")
		return
	}
	t := totalsOf(employees)

	sb.WriteString("**BALANCE OUTLIERS (IQR method)**\n")
	if len(employees) < outlierMinSample {
		sb.WriteString("- Too few employees to compute quartiles\n")
	} else {
		q1, q3 := stats.Quartiles(t.balances)
		iqr := q3 - q1
		lower, upper := q1-1.5*iqr, q3+1.5*iqr
		fmt.Fprintf(sb, "- Q1: %.1f, Q3: %.1f, IQR: %.1f (bounds %.1f to %.1f)\n", q1, q3, iqr, lower, upper)

		found := false
		for _, e := range employees {
			b := float64(e.Balance)
			switch {
			case b < lower:
				fmt.Fprintf(sb, "- Extremely Low: %s (%s) with %d days\n", e.Name, e.ID, e.Balance)
				found = true
			case b > upper:
				fmt.Fprintf(sb, "- Extremely High: %s (%s) with %d days\n", e.Name, e.ID, e.Balance)
				found = true
			}
		}
		if !found {
			sb.WriteString("- No statistical outliers detected\n")
		}
	}

	sb.WriteString("\n**ANOMALIES**\n")
	var anomalies []string
	maxBalance, maxTaken := 0, 0
	zero := 0
	for _, e := range employees {
		maxBalance = max(maxBalance, e.Balance)
		maxTaken = max(maxTaken, e.LeavesTaken())
		if e.Balance == 0 {
			zero++
		}
	}
	if maxBalance > 25 {
		anomalies = append(anomalies, fmt.Sprintf("Unusually high balance detected: %d days", maxBalance))
	}
	if zero > 0 {
		anomalies = append(anomalies, fmt.Sprintf("%s with zero balance", plural(zero, "employee")))
	}
	if maxTaken > 15 {
		anomalies = append(anomalies, fmt.Sprintf("Unusually high leave usage detected: %d days", maxTaken))
	}
	if len(anomalies) == 0 {
		anomalies = append(anomalies, "No anomalies detected")
	}
	for _, a := range anomalies {
		fmt.Fprintf(sb, "- %s\n", a)
	}
	trimTrailingNewline(sb)
}

type recommendation struct {
	priority string
	title    string
	detail   string
}

// recommendations appends the strategic recommendations block.
func recommendations(sb *strings.Builder, employees []employee.Employee) {
	t := totalsOf(employees)
	n := float64(t.n)

	lowCount, highCount := 0, 0
	for _, e := range employees {
		if e.Balance <= lowBalanceThreshold {
			lowCount++
		}
		if e.Balance > 15 {
			highCount++
		}
	}

	var recs []recommendation
	if float64(lowCount) > n*0.2 {
		recs = append(recs, recommendation{"HIGH", "Immediate Leave Balance Refresh Required",
			fmt.Sprintf("%d employees (%.1f%%) have 5 days or fewer remaining", lowCount, float64(lowCount)/n*100)})
	}
	if float64(highCount) > n*0.3 {
		recs = append(recs, recommendation{"MEDIUM", "Encourage Leave Taking",
			fmt.Sprintf("%d employees have more than 15 days unused, a potential burnout risk", highCount)})
	}
	if t.avgTaken() < 8 {
		recs = append(recs, recommendation{"MEDIUM", "Low Leave Utilization Detected",
			fmt.Sprintf("Average of %.1f days taken, below healthy levels", t.avgTaken())})
	}

	type deptAgg struct {
		count   int
		balance int
	}
	depts := make(map[string]*deptAgg)
	var names []string
	for _, e := range employees {
		d, ok := depts[e.Department]
		if !ok {
			d = &deptAgg{}
			depts[e.Department] = d
			names = append(names, e.Department)
		}
		d.count++
		d.balance += e.Balance
	}
	sort.Strings(names)
	for _, name := range names {
		d := depts[name]
		if d.count < 2 {
			continue
		}
		if avg := float64(d.balance) / float64(d.count); avg < t.avgBalance()-5 {
			recs = append(recs, recommendation{"MEDIUM", name + " Department Needs Attention",
				fmt.Sprintf("Average balance %.1f days, well below the organization average of %.1f", avg, t.avgBalance())})
		}
	}

	recs = append(recs, recommendation{"LOW", "Optimize Leave Management Policies",
		"Review leave policies regularly and keep leave planning visible to managers"})

	sb.WriteString("**STRATEGIC RECOMMENDATIONS**\n")
	for i, r := range recs {
		fmt.Fprintf(sb, "%d. [%s] **%s**: %s\n", i+1, r.priority, r.title, r.detail)
	}
	trimTrailingNewline(sb)
}

func trimTrailingNewline(sb *strings.Builder) {
	s := strings.TrimRight(sb.String(), "\n")
	sb.Reset()
	sb.WriteString(s)
}
