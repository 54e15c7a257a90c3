package employee

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func emailFor(id string) string {
	return strings.ToLower(id) + "@company.com"
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// NormalizeID upper-cases and trims an employee id.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
