package calendar

import (
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/intent"
)

// Domain-specific errors for the calendar package.
var (
	ErrEmptyInput           = errors.New("input text is empty")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrNoMatch              = errors.New("no matching event")
	ErrUnsupportedAction    = errors.New("unsupported calendar action")
)

// MissingFieldsError lists the fields an action could not do without.
type MissingFieldsError struct {
	Action intent.Action
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required field(s) for %s: %s", e.Action, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
