package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID    string
	Username  string
	Role      Role
	SessionID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
