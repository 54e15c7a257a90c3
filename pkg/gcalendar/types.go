package gcalendar

import "time"

const (
	DateLayout         = "2006-01-02"
	DefaultTokenPath   = "token.json"
	PropertyEmployeeID = "employee_id"
)

// LeaveEventRequest describes one all-day leave entry.
type LeaveEventRequest struct {
	CalendarID   string
	EmployeeID   string
	EmployeeName string
	Date         string // YYYY-MM-DD
	Description  string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID         string
	Summary    string
	HtmlLink   string
	Date       string
	EmployeeID string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	EmployeeID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
