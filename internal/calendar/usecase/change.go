package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/gcalendar"
)

// Google event ids use the base32hex alphabet.
var eventIDPattern = regexp.MustCompile(`^[a-v0-9]{16,}$`)

// change patches an event given by id, or by name through resolve.
func (uc *implUseCase) change(ctx context.Context, fields intent.Fields) calendar.Outcome {
	id := fields.Get(intent.FieldID)
	target := fields.Get(intent.FieldTarget)

	required := []string{intent.FieldUpdate}
	if id == "" {
		required = append([]string{intent.FieldTarget}, required...)
	}
	if err := requireFields(intent.ActionChange, fields, required...); err != nil {
		return failure(intent.CategoryCalendar, intent.ActionChange, err)
	}

	patch := uc.parseUpdate(fields.Get(intent.FieldUpdate))
	if patch.Empty() {
		return failure(intent.CategoryCalendar, intent.ActionChange,
			&calendar.MissingFieldsError{Action: intent.ActionChange, Fields: []string{intent.FieldUpdate}})
	}

	if id == "" {
		resolved, err := uc.resolveTarget(ctx, target)
		if err != nil {
			return failure(intent.CategoryCalendar, intent.ActionChange, err)
		}
		id = resolved
	}

	if patch.StartTime != nil || patch.EndTime != nil {
		current, err := uc.backend.GetEvent(ctx, uc.cfg.CalendarID, id)
		if err != nil {
			return failure(intent.CategoryCalendar, intent.ActionChange, err)
		}
		uc.fixTimes(&patch, current)
	}

	event, err := uc.backend.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID: uc.cfg.CalendarID,
		EventID:    id,
		Patch:      patch,
	})
	if err != nil {
		uc.l.Errorf(ctx, "change: failed to update event id=%s: %v", id, err)
		return failure(intent.CategoryCalendar, intent.ActionChange, err)
	}

	uc.l.Infof(ctx, "change: updated event id=%s", id)
	return calendar.Outcome{
		Kind:     calendar.OutcomeSuccess,
		Category: intent.CategoryCalendar,
		Action:   intent.ActionChange,
		Message:  changedMessage(event),
		Event:    event,
	}
}

// fixTimes keeps the current duration when only the start moves and makes
// sure the resulting end is after the start.
func (uc *implUseCase) fixTimes(patch *gcalendar.EventPatch, current *gcalendar.Event) {
	start := current.StartTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}

	end := current.EndTime
	switch {
	case patch.EndTime != nil:
		end = *patch.EndTime
	case patch.StartTime != nil:
		duration := current.EndTime.Sub(current.StartTime)
		if duration <= 0 {
			duration = uc.cfg.DefaultDuration
		}
		end = start.Add(duration)
	}

	end = uc.ensureAfter(start, end)
	patch.EndTime = &end
}

// resolveTarget returns the event id for target. A target shaped like an
// event id is used as is when the backend knows it; anything else, including
// an unknown id-shaped name, goes through resolve.
func (uc *implUseCase) resolveTarget(ctx context.Context, target string) (string, error) {
	if looksLikeEventID(target) {
		_, err := uc.backend.GetEvent(ctx, uc.cfg.CalendarID, target)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, gcalendar.ErrNotFound) {
			return "", err
		}
	}

	best, err := uc.resolve(ctx, uc.cfg.CalendarID, target, uc.cfg.MinScore, nil)
	if err != nil {
		return "", err
	}
	return best.Event.ID, nil
}

func looksLikeEventID(s string) bool {
	return !strings.ContainsAny(s, " \t\n") && eventIDPattern.MatchString(s)
}
