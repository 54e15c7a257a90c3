package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// tokenPath is only consulted for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON, or OAuth desktop
// credentials plus a token file produced by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: OAuth credentials need %s (run scripts/gcal-auth): %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse %s: %w", tokenPath, err)
	}

	return newClient(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateLeaveEvent inserts an all-day event for one leave date. The employee id
// is stored as a private extended property so ListEvents can find it again.
func (c *Client) CreateLeaveEvent(ctx context.Context, req LeaveEventRequest) (*Event, error) {
	day, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: invalid date %q: %w", req.Date, err)
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Leave: %s (%s)", req.EmployeeName, req.EmployeeID),
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: req.Date},
		// End date is exclusive for all-day events.
		End:          &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(DateLayout)},
		Transparency: "transparent",
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{PropertyEmployeeID: req.EmployeeID},
		},
	}

	created, err := c.service.Events.Insert(calendarIDOrPrimary(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}
	return toEvent(created), nil
}

// ListEvents returns single events between TimeMin and TimeMax, optionally
// filtered to one employee's leave entries.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarIDOrPrimary(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.EmployeeID != "" {
		call = call.PrivateExtendedProperty(PropertyEmployeeID + "=" + req.EmployeeID)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: list events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, *toEvent(item))
	}
	return events, nil
}

func toEvent(e *calendar.Event) *Event {
	out := &Event{
		ID:       e.Id,
		Summary:  e.Summary,
		HtmlLink: e.HtmlLink,
	}
	if e.Start != nil {
		out.Date = e.Start.Date
		if out.Date == "" && len(e.Start.DateTime) >= len(DateLayout) {
			out.Date = e.Start.DateTime[:len(DateLayout)]
		}
	}
	if e.ExtendedProperties != nil {
		out.EmployeeID = e.ExtendedProperties.Private[PropertyEmployeeID]
	}
	return out
}

func calendarIDOrPrimary(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
