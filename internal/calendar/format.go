package calendar

import (
	"fmt"
	"strings"

	"calendar-assistant/pkg/gcalendar"
)

// Layouts used in chat replies.
const (
	DisplayLayout = "Mon, 02 Jan 2006 15:04 MST"
	DayLayout     = "Mon, 02 Jan 2006"
)

// FormatWhen renders the start and end of an event for chat replies.
func FormatWhen(e gcalendar.Event) string {
	if e.AllDay {
		return e.StartTime.Format(DayLayout) + " (all day)"
	}
	if e.EndTime.IsZero() {
		return e.StartTime.Format(DisplayLayout)
	}
	end := e.EndTime.In(e.StartTime.Location())
	sy, sm, sd := e.StartTime.Date()
	ey, em, ed := end.Date()
	if sy == ey && sm == em && sd == ed {
		return fmt.Sprintf("%s %s-%s %s", e.StartTime.Format(DayLayout), e.StartTime.Format("15:04"), end.Format("15:04"), e.StartTime.Format("MST"))
	}
	return fmt.Sprintf("%s - %s", e.StartTime.Format(DisplayLayout), e.EndTime.Format(DisplayLayout))
}

// FormatEventList renders upcoming events, one per line.
func FormatEventList(events []gcalendar.Event) string {
	if len(events) == 0 {
		return "No upcoming events."
	}
	return FormatAgenda("Upcoming events:", events)
}

// FormatAgenda renders a header followed by one "- when | title" line per event.
func FormatAgenda(header string, events []gcalendar.Event) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range events {
		title := e.Summary
		if title == "" {
			title = "(no title)"
		}
		fmt.Fprintf(&sb, "\n- %s | %s", FormatWhen(e), title)
	}
	return sb.String()
}
