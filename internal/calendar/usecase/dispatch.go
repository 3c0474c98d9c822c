package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/internal/model"
)

// Dispatch executes a classified intent. Panics inside the unit of work are
// recovered and reported as a failure.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, in intent.Intent, userText string) (out calendar.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "Dispatch: recovered panic for user=%s: %v", sc.UserID, r)
			out = failure(in.Category, "", fmt.Errorf("panic: %v", r))
		}
	}()

	switch in.Category {
	case intent.CategoryMessage, intent.CategoryList:
		return calendar.Outcome{Kind: calendar.OutcomePassThrough, Category: in.Category}
	case intent.CategoryCalendar:
	default:
		return failure(in.Category, "", fmt.Errorf("%w: category %q", calendar.ErrUnsupportedAction, in.Category))
	}

	if in.Calendar == nil {
		return failure(in.Category, "", fmt.Errorf("%w: missing calendar details", calendar.ErrUnsupportedAction))
	}

	action := in.Calendar.Action
	fields := in.Calendar.Fields
	uc.l.Infof(ctx, "Dispatch: user=%s action=%s fields=%d", sc.UserID, action, len(fields))

	switch action {
	case intent.ActionAdd:
		return uc.add(ctx, fields, userText)
	case intent.ActionRemove:
		return uc.remove(ctx, fields)
	case intent.ActionChange:
		return uc.change(ctx, fields)
	default:
		return failure(in.Category, action, fmt.Errorf("%w: %q", calendar.ErrUnsupportedAction, action))
	}
}

// requireFields returns a MissingFieldsError naming every absent key.
func requireFields(action intent.Action, fields intent.Fields, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if strings.TrimSpace(fields.Get(k)) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &calendar.MissingFieldsError{Action: action, Fields: missing}
}
