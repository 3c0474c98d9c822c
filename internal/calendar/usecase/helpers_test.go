package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubBackend is an in-memory calendar that records every call.
type stubBackend struct {
	mu sync.Mutex

	events    []gcalendar.Event
	searchErr error
	createErr error
	deleteErr error
	updateErr error
	panicOn   string

	searches []string
	created  []gcalendar.CreateEventRequest
	deleted  []string
	updated  []gcalendar.UpdateEventRequest
	gets     []string
}

func (s *stubBackend) ListUpcoming(ctx context.Context, calendarID string, maxResults int64) ([]gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	out := append([]gcalendar.Event(nil), s.events...)
	if int64(len(out)) > maxResults {
		out = out[:maxResults]
	}
	return out, nil
}

func (s *stubBackend) SearchByText(ctx context.Context, calendarID, query string, maxResults int64) ([]gcalendar.Event, error) {
	s.mu.Lock()
	s.searches = append(s.searches, query)
	panicOn := s.panicOn
	s.mu.Unlock()
	if panicOn == "search" {
		panic("backend exploded")
	}
	return s.ListUpcoming(ctx, calendarID, maxResults)
}

func (s *stubBackend) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &gcalendar.Event{
		ID:          "created-1",
		CalendarID:  req.CalendarID,
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		HtmlLink:    "https://calendar.google.com/event?eid=created-1",
	}, nil
}

func (s *stubBackend) GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets = append(s.gets, eventID)
	for _, e := range s.events {
		if e.ID == eventID {
			ev := e
			return &ev, nil
		}
	}
	return nil, gcalendar.ErrNotFound
}

func (s *stubBackend) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, req)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for _, e := range s.events {
		if e.ID != req.EventID {
			continue
		}
		ev := e
		if req.Patch.Summary != nil {
			ev.Summary = *req.Patch.Summary
		}
		if req.Patch.Description != nil {
			ev.Description = *req.Patch.Description
		}
		if req.Patch.StartTime != nil {
			ev.StartTime = *req.Patch.StartTime
		}
		if req.Patch.EndTime != nil {
			ev.EndTime = *req.Patch.EndTime
		}
		return &ev, nil
	}
	return nil, gcalendar.ErrNotFound
}

func (s *stubBackend) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, eventID)
	return s.deleteErr
}

type stubClassifier struct {
	raw     string
	err     error
	gotText string
	gotNow  time.Time
}

func (s *stubClassifier) Classify(ctx context.Context, userText string, now time.Time) (string, error) {
	s.gotText = userText
	s.gotNow = now
	return s.raw, s.err
}

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return s.text, s.err
}

var (
	plusOne = time.FixedZone("UTC+01:00", 3600)
	// Wednesday, 2026-02-04 09:00 UTC+1.
	testNow = time.Date(2026, 2, 4, 9, 0, 0, 0, plusOne)

	errBoom = errors.New("boom")
)

func newTestUseCase(backend *stubBackend, classifier *stubClassifier, transcriber *stubTranscriber) *implUseCase {
	if classifier == nil {
		classifier = &stubClassifier{}
	}
	if transcriber == nil {
		transcriber = &stubTranscriber{}
	}
	clock := func() time.Time { return testNow }
	uc := New(
		&mockLogger{},
		backend,
		classifier,
		transcriber,
		datemath.NewNormalizer(time.Hour, datemath.WithClock(clock)),
		Config{},
	)
	uc.now = clock
	return uc
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 2, day, hour, minute, 0, 0, plusOne)
}
