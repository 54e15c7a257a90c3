package database

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultPingTimeout = 5 * time.Second
)
