package gcalendar

import "time"

// DefaultCalendarID addresses the authenticated user's main calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, optional when StartTime/EndTime carry an offset
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	CalendarID  string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
// Results are expanded to single occurrences and ordered by start time.
type ListEventsRequest struct {
	CalendarID string
	Query      string
	TimeMin    time.Time
	TimeMax    time.Time // zero means open-ended
	MaxResults int64
}

// EventPatch lists the fields to replace on an existing event. Nil fields are kept.
type EventPatch struct {
	Summary     *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Empty reports whether the patch changes nothing.
func (p EventPatch) Empty() bool {
	return p.Summary == nil && p.Description == nil && p.StartTime == nil && p.EndTime == nil
}

// UpdateEventRequest is the input for patching an existing event.
type UpdateEventRequest struct {
	CalendarID string
	EventID    string
	Patch      EventPatch
}
