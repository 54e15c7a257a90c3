package router

import "hr-agent-system/internal/model"

// Route classifies query, selects its handler and applies the role gate.
// It is pure and safe for concurrent use.
func Route(query string, role model.Role) Decision {
	category := Classify(query)
	allowed, reason := Authorize(role, category)
	return Decision{
		Category:      category,
		TargetHandler: HandlerFor(category),
		Authorized:    allowed,
		DenialReason:  reason,
	}
}

// HandlerFor returns the handler serving category. Categories outside the
// table fall back to the employee handler.
func HandlerFor(category model.TaskCategory) HandlerName {
	if h, ok := handlerTable[category]; ok {
		return h
	}
	return HandlerEmployee
}

// Explanation returns the one-line routing notice for handler.
func Explanation(handler HandlerName) string {
	if e, ok := explanations[handler]; ok {
		return e
	}
	return "Routing your request to the " + string(handler) + "."
}
