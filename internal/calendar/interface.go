package calendar

import (
	"context"
	"time"

	"calendar-assistant/internal/intent"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
)

// UseCase resolves natural-language calendar requests into calendar mutations.
type UseCase interface {
	// Handle classifies user text and executes the resulting intent.
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (Outcome, error)

	// HandleVoice transcribes a voice note and handles the transcript.
	HandleVoice(ctx context.Context, sc model.Scope, input VoiceInput) (Outcome, error)

	// Dispatch executes an already classified intent. It never fails: every
	// problem is reported through the returned Outcome.
	Dispatch(ctx context.Context, sc model.Scope, in intent.Intent, userText string) Outcome

	// Search returns upcoming events matching query, best title match first.
	Search(ctx context.Context, calendarID, query string, limit int64) ([]MatchCandidate, error)

	// BestMatch returns the id of the best matching event when its score reaches minScore.
	BestMatch(ctx context.Context, calendarID, query string, minScore float64) (string, bool, error)

	// ListUpcoming returns up to maxResults upcoming events of the configured calendar.
	ListUpcoming(ctx context.Context, maxResults int64) ([]gcalendar.Event, error)
}

// Backend is the remote calendar store.
type Backend interface {
	ListUpcoming(ctx context.Context, calendarID string, maxResults int64) ([]gcalendar.Event, error)
	SearchByText(ctx context.Context, calendarID, query string, maxResults int64) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Classifier turns user text into the raw three-line classification.
type Classifier interface {
	Classify(ctx context.Context, userText string, now time.Time) (string, error)
}

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
