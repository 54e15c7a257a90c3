package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hr-agent-system/internal/employee"
	repo "hr-agent-system/internal/employee/repository"
	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/database"
)

const employeeColumns = `employee_id, name, department, role, balance, password_hash, created_at, updated_at`

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// UpsertEmployee inserts or replaces an employee together with its leave history.
func (r *implRepository) UpsertEmployee(ctx context.Context, opt repo.UpsertEmployeeOptions) (employee.Employee, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO employees (employee_id, name, department, role, balance, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			name = excluded.name,
			department = excluded.department,
			role = excluded.role,
			balance = excluded.balance,
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at`
	_, err = tx.ExecContext(ctx, r.db.Rebind(upsert),
		opt.ID, opt.Name, opt.Department, opt.Role.String(), opt.Balance, opt.PasswordHash, opt.Now.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToInsert
	}

	if _, err := tx.ExecContext(ctx, r.db.Rebind(`DELETE FROM leave_history WHERE employee_id = $1`), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s clear history: %v", r.dsn("UpsertEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToInsert
	}
	if err := r.insertLeaveDates(ctx, tx, opt.ID, opt.LeaveHistory, opt.Now); err != nil {
		r.l.Errorf(ctx, "%s history: %v", r.dsn("UpsertEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToInsert
	}

	return r.GetOneEmployee(ctx, repo.GetOneEmployeeOptions{ID: opt.ID})
}

// GetOneEmployee retrieves a single employee with history.
// Returns zero-value Employee (ID == "") when not found.
func (r *implRepository) GetOneEmployee(ctx context.Context, opt repo.GetOneEmployeeOptions) (employee.Employee, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1`, employeeColumns))

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return employee.Employee{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToGet
	}

	history, err := r.loadHistory(ctx, r.db, []string{e.ID})
	if err != nil {
		r.l.Errorf(ctx, "%s history: %v", r.dsn("GetOneEmployee"), err)
		return employee.Employee{}, repo.ErrFailedToGet
	}
	e.LeaveHistory = history[e.ID]
	return e, nil
}

// ListEmployees returns a page of employees (with history) and the total count.
func (r *implRepository) ListEmployees(ctx context.Context, opt repo.ListEmployeesOptions) ([]employee.Employee, int, error) {
	// 1. Count total (without pagination)
	where, args := r.buildWhere(opt)
	var total int
	countQuery := r.db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", where))
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEmployees"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM employees %s", employeeColumns, mods))
	employees, err := r.queryEmployees(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEmployees"), err)
		return nil, 0, repo.ErrFailedToList
	}
	if len(employees) == 0 {
		return employees, total, nil
	}

	// 3. Attach history
	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	history, err := r.loadHistory(ctx, r.db, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s history: %v", r.dsn("ListEmployees"), err)
		return nil, 0, repo.ErrFailedToList
	}
	for i := range employees {
		employees[i].LeaveHistory = history[employees[i].ID]
	}
	return employees, total, nil
}

// ListDepartments aggregates head count, balance and leaves taken per department, sorted by name.
func (r *implRepository) ListDepartments(ctx context.Context) ([]employee.DepartmentSummary, error) {
	const query = `
		SELECT e.department,
			COUNT(*),
			CAST(COALESCE(SUM(e.balance), 0) AS BIGINT),
			CAST(COALESCE(SUM(h.taken), 0) AS BIGINT)
		FROM employees e
		LEFT JOIN (
			SELECT employee_id, COUNT(*) AS taken FROM leave_history GROUP BY employee_id
		) h ON h.employee_id = e.employee_id
		GROUP BY e.department
		ORDER BY e.department`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []employee.DepartmentSummary
	for rows.Next() {
		var d employee.DepartmentSummary
		if err := rows.Scan(&d.Name, &d.Headcount, &d.TotalBalance, &d.TotalTaken); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDepartments"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// ApplyLeave deducts the requested days and records the dates atomically.
func (r *implRepository) ApplyLeave(ctx context.Context, opt repo.ApplyLeaveOptions) (employee.Employee, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ApplyLeave"), err)
		return employee.Employee{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const deduct = `
		UPDATE employees
		SET balance = balance - $1, updated_at = $2
		WHERE employee_id = $3 AND balance >= $1`
	res, err := tx.ExecContext(ctx, r.db.Rebind(deduct), len(opt.Dates), opt.Now.UTC(), opt.EmployeeID)
	if err != nil {
		r.l.Errorf(ctx, "%s deduct: %v", r.dsn("ApplyLeave"), err)
		return employee.Employee{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return employee.Employee{}, repo.ErrBalanceChanged
	}

	if err := r.insertLeaveDates(ctx, tx, opt.EmployeeID, opt.Dates, opt.Now); err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, repo.ErrDateTaken
		}
		r.l.Errorf(ctx, "%s record: %v", r.dsn("ApplyLeave"), err)
		return employee.Employee{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ApplyLeave"), err)
		return employee.Employee{}, repo.ErrFailedToUpdate
	}

	return r.GetOneEmployee(ctx, repo.GetOneEmployeeOptions{ID: opt.EmployeeID})
}

func (r *implRepository) insertLeaveDates(ctx context.Context, tx *sql.Tx, id string, dates []string, now time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, r.db.Rebind(
		`INSERT INTO leave_history (employee_id, leave_date, created_at) VALUES ($1, $2, $3)`,
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range dates {
		if _, err := stmt.ExecContext(ctx, id, d, now.UTC()); err != nil {
			return err
		}
	}
	return nil
}

func (r *implRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// loadHistory returns ascending leave dates keyed by employee id.
func (r *implRepository) loadHistory(ctx context.Context, q queryer, ids []string) (map[string][]string, error) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := r.db.Rebind(fmt.Sprintf(
		`SELECT employee_id, leave_date FROM leave_history WHERE employee_id IN (%s) ORDER BY leave_date`,
		strings.Join(placeholders, ", "),
	))

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make(map[string][]string, len(ids))
	for rows.Next() {
		var id, date string
		if err := rows.Scan(&id, &date); err != nil {
			return nil, err
		}
		history[id] = append(history[id], date)
	}
	return history, rows.Err()
}

func scanEmployee(s rowScanner) (employee.Employee, error) {
	var (
		e    employee.Employee
		role string
	)
	err := s.Scan(&e.ID, &e.Name, &e.Department, &role, &e.Balance, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	e.Role = model.ParseRole(role)
	return e, nil
}
