package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/gcalendar"
)

// add creates an event from name/start/end/details. The start date follows a
// weekday named in the original user text unless that text has an explicit date.
func (uc *implUseCase) add(ctx context.Context, fields intent.Fields, userText string) calendar.Outcome {
	if err := requireFields(intent.ActionAdd, fields, intent.FieldName, intent.FieldStart); err != nil {
		return failure(intent.CategoryCalendar, intent.ActionAdd, err)
	}

	parsed, err := uc.dateMath.Normalize(fields.Get(intent.FieldStart))
	if err != nil {
		return failure(intent.CategoryCalendar, intent.ActionAdd, fmt.Errorf("start: %w", err))
	}
	start := uc.dateMath.AlignToWeekdayHint(userText, parsed)
	shift := start.Sub(parsed)

	end, ok := uc.parseEnd(fields.Get(intent.FieldEnd))
	if ok {
		end = end.Add(shift)
	}
	end = uc.ensureAfter(start, end)

	event, err := uc.backend.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     fields.Get(intent.FieldName),
		Description: fields.Get(intent.FieldDetails),
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "add: failed to create event %q: %v", fields.Get(intent.FieldName), err)
		return failure(intent.CategoryCalendar, intent.ActionAdd, err)
	}

	uc.l.Infof(ctx, "add: created event id=%s", event.ID)
	return calendar.Outcome{
		Kind:     calendar.OutcomeSuccess,
		Category: intent.CategoryCalendar,
		Action:   intent.ActionAdd,
		Message:  addedMessage(event),
		Event:    event,
	}
}

// parseEnd returns the parsed end, or false when raw is empty or malformed.
func (uc *implUseCase) parseEnd(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	end, err := uc.dateMath.Normalize(raw)
	if err != nil {
		return time.Time{}, false
	}
	return end, true
}

// ensureAfter returns end when it is strictly after start, otherwise start
// plus the default duration.
func (uc *implUseCase) ensureAfter(start, end time.Time) time.Time {
	if end.After(start) {
		return end
	}
	return start.Add(uc.cfg.DefaultDuration)
}
