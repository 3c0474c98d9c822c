package http

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/gcalendar"
)

// --- Request DTOs ---

type listReq struct {
	Limit int64 `form:"limit"`
}

func (r listReq) validate() error {
	if r.Limit < 0 || r.Limit > maxListLimit {
		return errInvalidLimit
	}
	return nil
}

func (r listReq) limit() int64 {
	if r.Limit == 0 {
		return defaultListLimit
	}
	return r.Limit
}

// --- Response DTOs ---

type eventResp struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"all_day"`
	When        string    `json:"when"`
	Link        string    `json:"link,omitempty"`
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func newListResp(events []gcalendar.Event) listResp {
	resp := listResp{Events: make([]eventResp, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, eventResp{
			ID:          e.ID,
			Summary:     e.Summary,
			Description: e.Description,
			Location:    e.Location,
			Start:       e.StartTime,
			End:         e.EndTime,
			AllDay:      e.AllDay,
			When:        calendar.FormatWhen(e),
			Link:        e.HtmlLink,
		})
	}
	return resp
}

// --- iCalendar ---

func buildFeed(name string, events []gcalendar.Event, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	cal.SetXWRCalName(name)

	for _, e := range events {
		ev := cal.AddEvent(eventUID(e))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.HtmlLink != "" {
			ev.SetURL(e.HtmlLink)
		}

		if e.AllDay {
			ev.SetAllDayStartAt(e.StartTime)
			if !e.EndTime.IsZero() {
				ev.SetAllDayEndAt(e.EndTime)
			}
			continue
		}
		ev.SetStartAt(e.StartTime)
		if !e.EndTime.IsZero() {
			ev.SetEndAt(e.EndTime)
		}
	}
	return cal
}

func eventUID(e gcalendar.Event) string {
	if e.CalendarID == "" {
		return e.ID
	}
	return e.ID + "@" + e.CalendarID
}
