package router

import "hr-agent-system/internal/model"

// HandlerName identifies a specialist handler in the registry.
type HandlerName string

const (
	HandlerLeave     HandlerName = "leave_agent"
	HandlerEmployee  HandlerName = "employee_agent"
	HandlerReporting HandlerName = "reporting_agent"
	HandlerAnalysis  HandlerName = "analysis_agent"
)

// Decision is the outcome of routing one query for one caller.
// When Authorized is false, DenialReason is non-empty and the target
// handler must not be invoked.
type Decision struct {
	Category      model.TaskCategory `json:"category"`
	TargetHandler HandlerName        `json:"target_handler"`
	Authorized    bool               `json:"authorized"`
	DenialReason  string             `json:"denial_reason,omitempty"`
}

// rule pairs a predicate over the lower-cased query with the category it yields.
type rule struct {
	match    func(q string) bool
	category model.TaskCategory
}
