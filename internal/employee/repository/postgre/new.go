package postgre

import (
	"fmt"

	"hr-agent-system/internal/employee/repository"
	"hr-agent-system/pkg/database"
	"hr-agent-system/pkg/log"
)

type implRepository struct {
	db *database.DB
	l  log.Logger
}

// New creates a SQL-backed Repository. The same queries run on Postgres and SQLite.
func New(db *database.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("employee/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("employee/repository/postgre.%s", method)
}
