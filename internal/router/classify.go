package router

import (
	"strings"

	"hr-agent-system/internal/model"
)

// rules is evaluated top to bottom; the first match wins. Family order is
// Leave, Analytics, Reporting, Employee, and each family lists its refined
// categories before its default.
var rules = []rule{
	{all(anyOf(leaveKeywords), contains("history")), model.CategoryLeaveHistory},
	{all(anyOf(leaveKeywords), anyOf(leaveApplicationWords)), model.CategoryLeaveApplication},
	{anyOf(leaveKeywords), model.CategoryLeaveBalance},

	{anyOf(analyticsKeywords), model.CategoryAnalytics},

	{all(anyOf(reportingKeywords), contains("department")), model.CategoryDepartmentStats},
	{anyOf(reportingKeywords), model.CategoryReporting},

	{all(anyOf(employeeKeywords), anyOf(employeeOverviewWords)), model.CategoryEmployeeOverview},
	{anyOf(employeeKeywords), model.CategoryEmployeeSearch},
}

// Classify maps free text to exactly one category. It never fails: text
// matching no family, including the empty string, is a general query.
func Classify(query string) model.TaskCategory {
	q := strings.ToLower(query)
	for _, r := range rules {
		if r.match(q) {
			return r.category
		}
	}
	return model.CategoryGeneralQuery
}

func contains(word string) func(string) bool {
	return func(q string) bool { return strings.Contains(q, word) }
}

func anyOf(words []string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

func all(preds ...func(string) bool) func(string) bool {
	return func(q string) bool {
		for _, p := range preds {
			if !p(q) {
				return false
			}
		}
		return true
	}
}
