package handlers

import (
	"context"
	"fmt"
	"strings"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/log"
)

// searchLeadWords precede the search term ("find employee John").
var searchLeadWords = []string{
	"employees", "employee", "profile", "information", "details", "find",
	"search", "contact", "who is", "staff", "person", "colleague", "look up",
}

// searchFillers are dropped from the front of the extracted term.
var searchFillers = []string{"for", "named", "called", "in", "from", "the", "of", "about", "with"}

const recentLeaveLimit = 5

type employeeHandler struct {
	l    log.Logger
	dir  Directory
	conv *Conversation
}

func (h *employeeHandler) Name() string {
	return string(router.HandlerEmployee)
}

func (h *employeeHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	if req.Category == model.CategoryGeneralQuery {
		return h.general(ctx, req)
	}

	if extractEmployeeID(req.Query) != "" {
		id, err := targetID(req)
		if err != nil {
			return "", err
		}
		return h.profile(ctx, id, req.Role)
	}
	return h.search(ctx, req)
}

func (h *employeeHandler) profile(ctx context.Context, id string, role model.Role) (string, error) {
	e, found, err := loadEmployee(ctx, h.dir, id)
	if err != nil {
		h.l.Errorf(ctx, "handlers.employee.profile: %v", err)
		return "", err
	}
	if !found {
		return notFoundText(id), nil
	}
	if role.IsHR() {
		return fullProfile(e), nil
	}
	return basicProfile(e), nil
}

func (h *employeeHandler) search(ctx context.Context, req agent.Request) (string, error) {
	term := searchTerm(req.Query)
	if term == "" {
		return "Who are you looking for? Try something like \"find employee Perera\" or include an employee ID.", nil
	}

	out, err := h.dir.List(ctx, employee.ListInput{Query: term})
	if err != nil {
		h.l.Errorf(ctx, "handlers.employee.search List: %v", err)
		return "", err
	}
	if len(out.Employees) == 0 {
		return fmt.Sprintf("**Search Results for '%s'**\nNo employees found matching your search.", term), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Search Results for '%s': %d found**\n", term, len(out.Employees))
	for _, e := range out.Employees {
		fmt.Fprintf(&sb, "\n**%s** (%s)\n", e.Name, e.ID)
		fmt.Fprintf(&sb, "  Department: %s\n", e.Department)
		if req.Role.IsHR() {
			fmt.Fprintf(&sb, "  Role: %s\n", e.Role)
			fmt.Fprintf(&sb, "  Leave Balance: %d days\n", e.Balance)
		}
		fmt.Fprintf(&sb, "  Email: %s\n", e.Email())
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (h *employeeHandler) general(ctx context.Context, req agent.Request) (string, error) {
	if reply, ok := h.conv.Respond(req.Caller, req.Role, req.Query); ok {
		return reply, nil
	}

	if containsAny(strings.ToLower(req.Query), "directory", "teams") {
		return h.directory(ctx)
	}

	e, found, err := loadEmployee(ctx, h.dir, employee.NormalizeID(req.CallerID))
	if err != nil {
		h.l.Errorf(ctx, "handlers.employee.general: %v", err)
		return "", err
	}

	var sb strings.Builder
	if found {
		sb.WriteString(basicProfile(e))
		sb.WriteString("\n\n")
	}
	sb.WriteString(capabilities(req.Role))
	return sb.String(), nil
}

// directory lists departments by name with head counts.
func (h *employeeHandler) directory(ctx context.Context) (string, error) {
	deps, err := h.dir.Departments(ctx)
	if err != nil {
		h.l.Errorf(ctx, "handlers.employee.directory Departments: %v", err)
		return "", err
	}
	if len(deps) == 0 {
		return "No departments found.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Company Directory: %s**\n", plural(len(deps), "department"))
	for _, d := range deps {
		fmt.Fprintf(&sb, "- %s: %s\n", d.Name, plural(d.Headcount, "employee"))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func fullProfile(e employee.Employee) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Complete Employee Profile: %s**\n\n", e.Name)
	fmt.Fprintf(&sb, "Employee ID: %s\n", e.ID)
	fmt.Fprintf(&sb, "Department: %s\n", e.Department)
	fmt.Fprintf(&sb, "Role: %s\n", e.Role)
	fmt.Fprintf(&sb, "Leave Balance: %d days\n", e.Balance)
	fmt.Fprintf(&sb, "Total Leaves Taken: %d days\n", e.LeavesTaken())
	fmt.Fprintf(&sb, "Email: %s\n\n", e.Email())

	if len(e.LeaveHistory) == 0 {
		sb.WriteString("Leave History: No leaves taken")
		return sb.String()
	}
	sb.WriteString("Recent Leave History:\n")
	recent := datesDesc(e.LeaveHistory)
	if len(recent) > recentLeaveLimit {
		recent = recent[:recentLeaveLimit]
	}
	for _, d := range recent {
		fmt.Fprintf(&sb, "  - %s\n", d)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func basicProfile(e employee.Employee) string {
	return fmt.Sprintf("**Employee Information: %s**\n\nEmployee ID: %s\nDepartment: %s\nEmail: %s\n\nFor additional details, please contact HR.",
		e.Name, e.ID, e.Department, e.Email())
}

// searchTerm returns the text after the last lead word, minus fillers and
// trailing punctuation.
func searchTerm(query string) string {
	q := strings.ToLower(query)
	cut := -1
	for _, w := range searchLeadWords {
		if i := strings.LastIndex(q, w); i >= 0 && i+len(w) > cut {
			cut = i + len(w)
		}
	}
	if cut < 0 {
		return ""
	}

	src := query
	if len(src) != len(q) {
		src = q
	}
	fields := strings.Fields(src[cut:])
	for len(fields) > 0 && isFiller(fields[0]) {
		fields = fields[1:]
	}
	return strings.Trim(strings.Join(fields, " "), " ?!.,:;\"'")
}

func isFiller(word string) bool {
	w := strings.ToLower(word)
	for _, f := range searchFillers {
		if w == f {
			return true
		}
	}
	return false
}
