package database

import (
	"context"
	"fmt"
)

const employeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	employee_id   TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	department    TEXT NOT NULL,
	role          TEXT NOT NULL,
	balance       INTEGER NOT NULL DEFAULT 0,
	password_hash TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
)`

const leaveHistoryTable = `
CREATE TABLE IF NOT EXISTS leave_history (
	id          %s,
	employee_id TEXT NOT NULL REFERENCES employees(employee_id) ON DELETE CASCADE,
	leave_date  TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	UNIQUE (employee_id, leave_date)
)`

const leaveHistoryIndex = `CREATE INDEX IF NOT EXISTS idx_leave_history_employee ON leave_history (employee_id)`

const employeesDepartmentIndex = `CREATE INDEX IF NOT EXISTS idx_employees_department ON employees (department)`

// Migrate creates the schema if it does not exist. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *DB) error {
	idColumn := "BIGSERIAL PRIMARY KEY"
	var stmts []string
	if db.driver == DriverSQLite {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
		stmts = append(stmts, "PRAGMA foreign_keys = ON")
	}

	stmts = append(stmts,
		employeesTable,
		fmt.Sprintf(leaveHistoryTable, idColumn),
		leaveHistoryIndex,
		employeesDepartmentIndex,
	)

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database.Migrate: %w", err)
		}
	}
	return nil
}
