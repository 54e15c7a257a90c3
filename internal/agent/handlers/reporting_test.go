package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/log"
)

func newReporting(dir Directory) agent.Handler {
	return NewReporting(log.NewNop(), Options{Directory: dir, Now: fixedNow})
}

func TestReporting(t *testing.T) {
	h := newReporting(newStubDirectory(fixtureEmployees()...))

	tcs := []struct {
		name     string
		query    string
		category model.TaskCategory
		want     []string
	}{
		{"overview", "show all employees", model.CategoryEmployeeOverview, []string{
			"EMPLOYEE OVERVIEW", "Generated: 2025-07-15 09:30:00", "Total Employees: **5**", "Departments: **3**",
			"Total Leave Balance: **52 days**", "Average Balance per Employee: **10.4 days**",
		}},
		{"reporting overview", "show all employees overview", model.CategoryReporting, []string{"EMPLOYEE OVERVIEW"}},
		{"named department", "show department stats for marketing", model.CategoryDepartmentStats, []string{
			"MARKETING DEPARTMENT REPORT", "Total Employees: **1**", "Utilization: **100.0%**",
		}},
		{"all departments", "show department stats", model.CategoryDepartmentStats, []string{
			"ALL DEPARTMENTS REPORT", "**HR DEPARTMENT**", "**IT DEPARTMENT**", "- Avg Balance: 7.0 days",
		}},
		{"statistics", "generate report", model.CategoryReporting, []string{
			"LEAVE STATISTICS REPORT", "- 0-5 days: 2 employees (40.0%)", "- 16-20 days: 2 employees (40.0%)",
			"1. **Sahan Fernando** (E004): 4 days", "LOW BALANCE ALERTS",
		}},
		{"low balance", "low balance report", model.CategoryReporting, []string{
			"ALERT: 2 employees need attention", "CRITICAL **Dilini Jayasuriya**", "HIGH **Sahan Fernando**",
		}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := h.Handle(context.Background(), hrRequest(tc.query, tc.category))
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestLowBalanceUrgency(t *testing.T) {
	for balance, want := range map[int]string{0: "CRITICAL", 1: "HIGH", 2: "HIGH", 3: "MEDIUM", 5: "MEDIUM"} {
		got, _ := lowBalanceUrgency(balance)
		assert.Equal(t, want, got, "balance %d", balance)
	}
}

func TestBucketOf(t *testing.T) {
	for balance, want := range map[int]int{0: 0, 5: 0, 6: 1, 10: 1, 11: 2, 16: 3, 20: 3, 21: 4} {
		assert.Equal(t, want, bucketOf(balance), "balance %d", balance)
	}
}

func TestReporting_Empty(t *testing.T) {
	h := newReporting(newStubDirectory())
	got, err := h.Handle(context.Background(), hrRequest("generate report", model.CategoryReporting))
	require.NoError(t, err)
	assert.Contains(t, got, "No employee records")
}

func TestReporting_StoreError(t *testing.T) {
	dir := newStubDirectory(fixtureEmployees()...)
	dir.err = errors.New("db down")
	_, err := newReporting(dir).Handle(context.Background(), hrRequest("generate report", model.CategoryReporting))
	assert.Error(t, err)
}
