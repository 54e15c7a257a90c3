package model

// TaskCategory is the fine-grained classification assigned to a query.
type TaskCategory string

const (
	CategoryLeaveBalance     TaskCategory = "leave_balance"
	CategoryLeaveApplication TaskCategory = "leave_application"
	CategoryLeaveHistory     TaskCategory = "leave_history"
	CategoryEmployeeOverview TaskCategory = "employee_overview"
	CategoryEmployeeSearch   TaskCategory = "employee_search"
	CategoryDepartmentStats  TaskCategory = "department_stats"
	CategoryReporting        TaskCategory = "reporting"
	CategoryAnalytics        TaskCategory = "analytics"
	CategoryGeneralQuery     TaskCategory = "general_query"
)

// AllCategories lists every category in declaration order.
var AllCategories = []TaskCategory{
	CategoryLeaveBalance,
	CategoryLeaveApplication,
	CategoryLeaveHistory,
	CategoryEmployeeOverview,
	CategoryEmployeeSearch,
	CategoryDepartmentStats,
	CategoryReporting,
	CategoryAnalytics,
	CategoryGeneralQuery,
}

// Valid reports whether c is a member of the closed enumeration.
func (c TaskCategory) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}
