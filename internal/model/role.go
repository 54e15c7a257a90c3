package model

import "strings"

// Role is the caller's HR role. The zero value is RoleUnknown.
type Role int

const (
	RoleUnknown Role = iota
	RoleEmployee
	RoleHR
)

// ParseRole normalizes s (trimmed, case-insensitive). Anything other than
// "HR" or "EMPLOYEE" yields RoleUnknown.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HR":
		return RoleHR
	case "EMPLOYEE":
		return RoleEmployee
	default:
		return RoleUnknown
	}
}

// IsHR reports whether r has unrestricted access.
func (r Role) IsHR() bool {
	return r == RoleHR
}

func (r Role) String() string {
	switch r {
	case RoleHR:
		return "HR"
	case RoleEmployee:
		return "Employee"
	default:
		return "Unknown"
	}
}

// MarshalText renders the role the way it is stored and put in tokens.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts any casing; unrecognized values become RoleUnknown.
func (r *Role) UnmarshalText(text []byte) error {
	*r = ParseRole(string(text))
	return nil
}
