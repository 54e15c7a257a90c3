package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	sqlite := &DB{driver: DriverSQLite}
	pg := &DB{driver: DriverPostgres}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"single", "SELECT * FROM employees WHERE employee_id = $1", "SELECT * FROM employees WHERE employee_id = ?1"},
		{"multi digit", "VALUES ($1, $2, $10)", "VALUES (?1, ?2, ?10)"},
		{"quoted dollar", "SELECT '$1' WHERE a = $1", "SELECT '$1' WHERE a = ?1"},
		{"bare dollar", "SELECT '$' || name", "SELECT '$' || name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlite.Rebind(tt.query))
			assert.Equal(t, tt.query, pg.Rebind(tt.query))
		})
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(context.Background(), Config{Driver: "mysql", DSN: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestConnect_MissingDSN(t *testing.T) {
	_, err := Connect(context.Background(), Config{Driver: DriverSQLite})
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, Config{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))
	// idempotent
	require.NoError(t, Migrate(ctx, db))

	_, err = db.ExecContext(ctx, db.Rebind(
		`INSERT INTO employees (employee_id, name, department, role, balance, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`),
		"E001", "Kalhar Dasanayaka", "HR", "HR", 18, "")
	require.NoError(t, err)

	insertLeave := db.Rebind(`INSERT INTO leave_history (employee_id, leave_date, created_at) VALUES ($1, $2, CURRENT_TIMESTAMP)`)
	_, err = db.ExecContext(ctx, insertLeave, "E001", "2024-12-25")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insertLeave, "E001", "2024-12-25")
	assert.Error(t, err, "duplicate leave date must violate the unique constraint")

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leave_history`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, Config{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE t (a TEXT NOT NULL, b TEXT, UNIQUE (a, b))`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO t (a, b) VALUES ('x', 'y')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO t (a, b) VALUES ('x', 'y')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.ExecContext(ctx, `INSERT INTO t (a, b) VALUES (NULL, 'z')`)
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err), "NOT NULL is not a uniqueness conflict")

	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
