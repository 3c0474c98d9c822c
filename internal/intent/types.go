package intent

// Category is the top-level bucket the classifier puts a message in.
type Category string

const (
	CategoryCalendar Category = "calendar"
	CategoryMessage  Category = "message"
	CategoryList     Category = "list"
)

// Action is the calendar operation requested by the user.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionChange Action = "change"
)

// Known reports whether the dispatcher has a handler for the action.
func (a Action) Known() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionChange:
		return true
	}
	return false
}

// Field keys understood by the dispatcher. Other keys are kept in Fields as-is.
const (
	FieldName    = "name"
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldDetails = "details"
	FieldID      = "id"
	FieldDate    = "date"
	FieldTarget  = "target"
	FieldUpdate  = "update"
)

// Fields maps lowercase keys to trimmed values.
type Fields map[string]string

// Get returns the value for key, or "" when absent.
func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Intent is a validated classifier decision for one user message.
type Intent struct {
	Category Category
	// Calendar is set only when Category is CategoryCalendar.
	Calendar *CalendarIntent
}

// CalendarIntent carries the action and the parsed description.
type CalendarIntent struct {
	Action      Action
	Description string
	Fields      Fields
}
