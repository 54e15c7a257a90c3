package router

import "hr-agent-system/internal/model"

// Keyword families, matched as substrings of the lower-cased query.
var (
	leaveKeywords = []string{
		"balance", "leave", "holiday", "vacation", "time off", "days left",
		"apply", "book", "request", "absence", "pto", "annual leave",
	}
	employeeKeywords = []string{
		"employee", "profile", "information", "details", "find", "search",
		"contact", "who is", "staff", "person", "colleague",
	}
	reportingKeywords = []string{
		"report", "overview", "statistics", "stats", "all employees",
		"department", "summary", "list", "count", "total",
	}
	analyticsKeywords = []string{
		"trend", "analysis", "insight", "pattern", "analytics",
		"forecast", "prediction", "compare", "most", "least",
	}

	leaveApplicationWords = []string{"apply", "book", "request"}
	employeeOverviewWords = []string{"all", "overview"}
)

// DenialReasonHROnly is returned verbatim for categories restricted to HR.
const DenialReasonHROnly = "You don't have permission to access this information. This feature is restricted to HR personnel."

// restrictedCategories are denied to every role except HR.
var restrictedCategories = map[model.TaskCategory]struct{}{
	model.CategoryEmployeeOverview: {},
	model.CategoryDepartmentStats:  {},
	model.CategoryReporting:        {},
	model.CategoryAnalytics:        {},
}

// handlerTable maps each category to the handler that serves it.
var handlerTable = map[model.TaskCategory]HandlerName{
	model.CategoryLeaveBalance:     HandlerLeave,
	model.CategoryLeaveApplication: HandlerLeave,
	model.CategoryLeaveHistory:     HandlerLeave,
	model.CategoryEmployeeOverview: HandlerReporting,
	model.CategoryEmployeeSearch:   HandlerEmployee,
	model.CategoryDepartmentStats:  HandlerReporting,
	model.CategoryReporting:        HandlerReporting,
	model.CategoryAnalytics:        HandlerAnalysis,
	model.CategoryGeneralQuery:     HandlerEmployee,
}

// Routing explanations shown before a handler's answer.
var explanations = map[HandlerName]string{
	HandlerLeave:     "I'm connecting you with our Leave Management specialist who can help with leave-related queries.",
	HandlerEmployee:  "I'm directing your query to our Employee Data specialist for assistance.",
	HandlerReporting: "I'm routing you to our HR Reporting specialist who can generate the information you need.",
	HandlerAnalysis:  "I'm connecting you with our Analytics specialist who can provide insights and analysis.",
}
