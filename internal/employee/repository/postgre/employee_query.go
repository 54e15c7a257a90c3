package postgre

import (
	"fmt"
	"strings"

	repo "hr-agent-system/internal/employee/repository"
	"hr-agent-system/pkg/database"
)

var allowedOrderBy = map[string]string{
	"":             "employee_id ASC",
	"employee_id":  "employee_id ASC",
	"name":         "name ASC",
	"department":   "department ASC, employee_id ASC",
	"balance_desc": "balance DESC, employee_id ASC",
	"balance_asc":  "balance ASC, employee_id ASC",
}

// buildWhere builds the WHERE clause + args shared by the count and page queries.
// Returns "1=1" when no filter applies.
func (r *implRepository) buildWhere(opt repo.ListEmployeesOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Department != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(department) = LOWER($%d)", idx))
		args = append(args, opt.Department)
		idx++
	}
	if q := strings.TrimSpace(opt.Query); q != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(name) LIKE $%d OR LOWER(employee_id) LIKE $%d OR LOWER(department) LIKE $%d)",
			idx, idx, idx,
		))
		args = append(args, "%"+strings.ToLower(q)+"%")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListEmployees.
func (r *implRepository) buildListQuery(opt repo.ListEmployeesOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{"WHERE " + where}
	idx := len(args) + 1

	orderBy, ok := allowedOrderBy[opt.OrderBy]
	if !ok {
		orderBy = allowedOrderBy[""]
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		if opt.Limit <= 0 {
			// SQLite requires LIMIT before OFFSET; -1 / ALL means unbounded.
			parts = append(parts, r.unboundedLimit())
		}
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) unboundedLimit() string {
	if r.db.Driver() == database.DriverSQLite {
		return "LIMIT -1"
	}
	return "LIMIT ALL"
}
