package router

import "hr-agent-system/internal/model"

// Authorize gates a category by role. HR is always allowed. Every other
// role, unknown ones included, is denied the HR-only categories.
// Record ownership is checked by the handlers, not here.
func Authorize(role model.Role, category model.TaskCategory) (bool, string) {
	if role.IsHR() {
		return true, ""
	}
	if _, restricted := restrictedCategories[category]; restricted {
		return false, DenialReasonHROnly
	}
	return true, ""
}
