package calendar

import (
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/gcalendar"
)

// HandleInput is a typed user message.
type HandleInput struct {
	Text string
}

// VoiceInput is a recorded voice message.
type VoiceInput struct {
	Audio    []byte
	MimeType string
}

// MatchCandidate is an event scored against a query.
type MatchCandidate struct {
	Event gcalendar.Event
	Score float64 // 0..1
}

// OutcomeKind tells the delivery layer what to do with an Outcome.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
	// OutcomePassThrough marks message and list intents, answered outside the dispatcher.
	OutcomePassThrough OutcomeKind = "pass_through"
)

// Outcome is the single result reported back for one user request.
type Outcome struct {
	Kind     OutcomeKind
	Category intent.Category
	Action   intent.Action
	Message  string
	// Event is the created or updated event, or the deleted one when known.
	Event *gcalendar.Event
	// Transcript is the recognised text of a voice message.
	Transcript string
	// Err is the cause of a failure, kept for logging.
	Err error
}

// OK reports whether the request succeeded.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}
