package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/gcalendar"
)

// remove deletes an event given by id, or by name through resolve.
func (uc *implUseCase) remove(ctx context.Context, fields intent.Fields) calendar.Outcome {
	id := fields.Get(intent.FieldID)
	name := fields.Get(intent.FieldName)
	if id == "" && name == "" {
		return failure(intent.CategoryCalendar, intent.ActionRemove,
			&calendar.MissingFieldsError{Action: intent.ActionRemove, Fields: []string{"name or id"}})
	}

	var target *gcalendar.Event
	if id == "" {
		best, err := uc.resolve(ctx, uc.cfg.CalendarID, name, uc.cfg.MinScore, uc.dayHint(fields))
		if err != nil {
			return failure(intent.CategoryCalendar, intent.ActionRemove, err)
		}
		id = best.Event.ID
		target = &best.Event
	}

	if err := uc.backend.DeleteEvent(ctx, uc.cfg.CalendarID, id); err != nil {
		uc.l.Errorf(ctx, "remove: failed to delete event id=%s: %v", id, err)
		return failure(intent.CategoryCalendar, intent.ActionRemove, err)
	}

	uc.l.Infof(ctx, "remove: deleted event id=%s", id)
	return calendar.Outcome{
		Kind:     calendar.OutcomeSuccess,
		Category: intent.CategoryCalendar,
		Action:   intent.ActionRemove,
		Message:  removedMessage(id, target),
		Event:    target,
	}
}

// dayHint narrows a by-name lookup to the day given in "date" or "start".
func (uc *implUseCase) dayHint(fields intent.Fields) *time.Time {
	for _, key := range []string{intent.FieldDate, intent.FieldStart} {
		raw := fields.Get(key)
		if raw == "" {
			continue
		}
		if t, err := uc.dateMath.Normalize(raw); err == nil {
			return &t
		}
	}
	return nil
}
