package router

import "hr-agent-system/internal/model"

// Router decides where a caller's query goes.
type Router interface {
	Route(query string, role model.Role) Decision
}

// KeywordRouter routes with the fixed keyword rule table.
type KeywordRouter struct{}

// Ensure KeywordRouter implements Router interface
var _ Router = KeywordRouter{}

// New returns the keyword router.
func New() KeywordRouter {
	return KeywordRouter{}
}

// Route implements Router.
func (KeywordRouter) Route(query string, role model.Role) Decision {
	return Route(query, role)
}
