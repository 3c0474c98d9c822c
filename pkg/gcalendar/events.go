package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

const allDayLayout = "2006-01-02"

// ListEvents returns single-occurrence events starting after TimeMin, ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := calendarOrDefault(req.CalendarID)

	call := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrCalendarNotFound, calendarID)
		}
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, convertEvent(calendarID, item))
	}
	return events, nil
}

// ListUpcoming returns up to maxResults events starting from now.
func (c *Client) ListUpcoming(ctx context.Context, calendarID string, maxResults int64) ([]Event, error) {
	return c.ListEvents(ctx, ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    c.now().UTC(),
		MaxResults: maxResults,
	})
}

// SearchByText returns up to maxResults upcoming events matching query server-side.
func (c *Client) SearchByText(ctx context.Context, calendarID, query string, maxResults int64) ([]Event, error) {
	return c.ListEvents(ctx, ListEventsRequest{
		CalendarID: calendarID,
		Query:      query,
		TimeMin:    c.now().UTC(),
		MaxResults: maxResults,
	})
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	calendarID := calendarOrDefault(req.CalendarID)

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       dateTime(req.StartTime, req.Timezone),
		End:         dateTime(req.EndTime, req.Timezone),
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w",
			rejected(err, calendarID, req.Summary, req.StartTime, req.EndTime))
	}

	out := convertEvent(calendarID, created)
	if out.StartTime.IsZero() {
		out.StartTime = req.StartTime
	}
	if out.EndTime.IsZero() {
		out.EndTime = req.EndTime
	}
	return &out, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	calendarID = calendarOrDefault(calendarID)

	item, err := c.get(ctx, calendarID, eventID)
	if err != nil {
		return nil, err
	}
	out := convertEvent(calendarID, item)
	return &out, nil
}

// UpdateEvent reads the current event, overlays the non-nil patch fields and
// writes the merged event back.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	calendarID := calendarOrDefault(req.CalendarID)

	current, err := c.get(ctx, calendarID, req.EventID)
	if err != nil {
		return nil, err
	}

	p := req.Patch
	if p.Summary != nil {
		current.Summary = *p.Summary
	}
	if p.Description != nil {
		current.Description = *p.Description
	}
	if p.StartTime != nil {
		current.Start = dateTime(*p.StartTime, "")
	}
	if p.EndTime != nil {
		current.End = dateTime(*p.EndTime, "")
	}
	// The API rejects an all-day boundary next to a timed one, so the untouched
	// side becomes midnight of its date in the patched zone.
	switch {
	case p.StartTime != nil && p.EndTime == nil:
		current.End = timedBoundary(current.End, p.StartTime.Location())
	case p.EndTime != nil && p.StartTime == nil:
		current.Start = timedBoundary(current.Start, p.EndTime.Location())
	}

	updated, err := c.service.Events.Update(calendarID, req.EventID, current).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, req.EventID)
		}
		merged := convertEvent(calendarID, current)
		return nil, fmt.Errorf("failed to update calendar event: %w",
			rejected(err, calendarID, merged.Summary, merged.StartTime, merged.EndTime))
	}

	out := convertEvent(calendarID, updated)
	return &out, nil
}

// DeleteEvent removes an event. Deleting an absent event returns ErrNotFound.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	calendarID = calendarOrDefault(calendarID)

	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, eventID)
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, calendarID, eventID string) (*calendar.Event, error) {
	item, err := c.service.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	// Cancelled events are still returned by Get.
	if item.Status == "cancelled" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return item, nil
}

func calendarOrDefault(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func dateTime(t time.Time, timezone string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		// RFC3339 embeds the offset, so TimeZone is optional
		DateTime: t.Format(time.RFC3339),
		TimeZone: timezone,
	}
}

func timedBoundary(b *calendar.EventDateTime, loc *time.Location) *calendar.EventDateTime {
	if b == nil || b.Date == "" {
		return b
	}
	day, err := time.ParseInLocation(allDayLayout, b.Date, loc)
	if err != nil {
		return b
	}
	return dateTime(day, "")
}

func convertEvent(calendarID string, item *calendar.Event) Event {
	out := Event{
		ID:          item.Id,
		CalendarID:  calendarID,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}
	out.StartTime, out.AllDay = parseDateTime(item.Start)
	out.EndTime, _ = parseDateTime(item.End)
	return out
}

// parseDateTime reads either a timed or an all-day boundary. Unparseable
// values give a zero time.
func parseDateTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t, false
	}
	if dt.Date != "" {
		t, err := time.Parse(allDayLayout, dt.Date)
		if err != nil {
			return time.Time{}, true
		}
		return t, true
	}
	return time.Time{}, false
}
