package usecase

import (
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
)

const (
	msgCouldNotUnderstand = "Sorry, I could not understand the voice message. Please try again or type it."
	msgClassifierDown     = "Sorry, I could not work out what you meant. Please rephrase."
	msgBackendFailed      = "Something went wrong while talking to the calendar. Please try again."
)

// failure builds the user-facing Outcome for err.
func failure(category intent.Category, action intent.Action, err error) calendar.Outcome {
	return calendar.Outcome{
		Kind:     calendar.OutcomeFailure,
		Category: category,
		Action:   action,
		Message:  failureMessage(action, err),
		Err:      err,
	}
}

func failureMessage(action intent.Action, err error) string {
	var missing *calendar.MissingFieldsError
	var rejected *gcalendar.RejectedPayloadError

	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("I need more details to %s an event. Missing: %s.", verb(missing.Action), strings.Join(missing.Fields, ", "))
	case errors.Is(err, datemath.ErrMalformedTimestamp):
		return fmt.Sprintf("I could not read the date or time (%v).", err)
	case errors.Is(err, calendar.ErrNoMatch):
		return "I could not find a matching event, so nothing was changed."
	case errors.Is(err, gcalendar.ErrNotFound):
		return "That event does not exist any more."
	case errors.As(err, &rejected):
		return fmt.Sprintf("Google Calendar rejected the event: %s\n(title %q, start %s, end %s, calendar %s)",
			rejected.Reason, rejected.Summary,
			rejected.Start.Format(calendar.DisplayLayout), rejected.End.Format(calendar.DisplayLayout), rejected.CalendarID)
	case errors.Is(err, calendar.ErrUnsupportedAction):
		if action != "" {
			return fmt.Sprintf("I don't know how to %q an event yet. I can add, remove or change events.", action)
		}
		return "I can add, remove or change events."
	default:
		return msgBackendFailed
	}
}

func verb(action intent.Action) string {
	switch action {
	case intent.ActionChange:
		return "change"
	case intent.ActionRemove:
		return "remove"
	default:
		return "add"
	}
}

func addedMessage(e *gcalendar.Event) string {
	return withLink(fmt.Sprintf("Added %q on %s.", e.Summary, calendar.FormatWhen(*e)), e)
}

func changedMessage(e *gcalendar.Event) string {
	return withLink(fmt.Sprintf("Updated %q, now on %s.", e.Summary, calendar.FormatWhen(*e)), e)
}

func removedMessage(id string, e *gcalendar.Event) string {
	if e == nil {
		return fmt.Sprintf("Deleted event %s.", id)
	}
	return fmt.Sprintf("Deleted %q (%s).", e.Summary, calendar.FormatWhen(*e))
}

func withLink(msg string, e *gcalendar.Event) string {
	if e.HtmlLink == "" {
		return msg
	}
	return msg + "\n" + e.HtmlLink
}
