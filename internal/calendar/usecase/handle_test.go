package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/gcalendar"
)

func TestHandle(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		uc := newTestUseCase(&stubBackend{}, nil, nil)
		if _, err := uc.Handle(context.Background(), sc, calendar.HandleInput{Text: "   "}); !errors.Is(err, calendar.ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Classified add uses original text for weekday", func(t *testing.T) {
		backend := &stubBackend{}
		classifier := &stubClassifier{raw: "category: calendar\nsubcategory: add\ndescription: name=Coffee,start=2026-02-10T14:00"}
		uc := newTestUseCase(backend, classifier, nil)

		out, err := uc.Handle(context.Background(), sc, calendar.HandleInput{Text: " coffee on friday at 2 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OK() || out.Action != intent.ActionAdd {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if classifier.gotText != "coffee on friday at 2" || !classifier.gotNow.Equal(testNow) {
			t.Errorf("classifier got %q at %v", classifier.gotText, classifier.gotNow)
		}
		if !backend.created[0].StartTime.Equal(at(6, 14, 0)) {
			t.Errorf("start = %v", backend.created[0].StartTime)
		}
	})

	t.Run("Classifier failure", func(t *testing.T) {
		backend := &stubBackend{}
		uc := newTestUseCase(backend, &stubClassifier{err: errBoom}, nil)

		out, err := uc.Handle(context.Background(), sc, calendar.HandleInput{Text: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomeFailure || !errors.Is(out.Err, errBoom) {
			t.Fatalf("expected failure outcome, got %+v", out)
		}
	})

	t.Run("Unparseable classification", func(t *testing.T) {
		uc := newTestUseCase(&stubBackend{}, &stubClassifier{raw: "category: calendar"}, nil)

		out, err := uc.Handle(context.Background(), sc, calendar.HandleInput{Text: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomeFailure || !errors.Is(out.Err, intent.ErrMalformedClassification) {
			t.Fatalf("expected malformed classification, got %+v", out)
		}
	})

	t.Run("Message passes through", func(t *testing.T) {
		uc := newTestUseCase(&stubBackend{}, &stubClassifier{raw: "category: message\nsubcategory: none\ndescription: hello"}, nil)

		out, err := uc.Handle(context.Background(), sc, calendar.HandleInput{Text: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomePassThrough || out.Category != intent.CategoryMessage {
			t.Fatalf("expected pass-through, got %+v", out)
		}
	})
}

func TestHandleVoice(t *testing.T) {
	addRaw := "category: calendar\nsubcategory: add\ndescription: name=Dentist,start=2026-02-10T14:00"

	t.Run("No audio is answered", func(t *testing.T) {
		classifier := &stubClassifier{raw: addRaw}
		uc := newTestUseCase(&stubBackend{}, classifier, nil)

		out, err := uc.HandleVoice(context.Background(), sc, calendar.VoiceInput{MimeType: "audio/ogg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomeFailure || !strings.Contains(out.Message, "could not understand") {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if !errors.Is(out.Err, calendar.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput cause, got %v", out.Err)
		}
		if classifier.gotText != "" {
			t.Error("nothing should be classified")
		}
	})

	t.Run("Silence is not an error", func(t *testing.T) {
		backend := &stubBackend{}
		classifier := &stubClassifier{raw: addRaw}
		uc := newTestUseCase(backend, classifier, &stubTranscriber{text: "  "})

		out, err := uc.HandleVoice(context.Background(), sc, calendar.VoiceInput{Audio: []byte("ogg"), MimeType: "audio/ogg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomeFailure || !strings.Contains(out.Message, "could not understand") {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if classifier.gotText != "" || len(backend.created) != 0 {
			t.Error("nothing should be classified or created")
		}
	})

	t.Run("Transcription failure", func(t *testing.T) {
		uc := newTestUseCase(&stubBackend{}, nil, &stubTranscriber{err: errBoom})

		out, err := uc.HandleVoice(context.Background(), sc, calendar.VoiceInput{Audio: []byte("ogg")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != calendar.OutcomeFailure || !errors.Is(out.Err, errBoom) {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("Transcript is handled", func(t *testing.T) {
		backend := &stubBackend{}
		uc := newTestUseCase(backend, &stubClassifier{raw: addRaw}, &stubTranscriber{text: "dentist 2026-02-10 at 2"})

		out, err := uc.HandleVoice(context.Background(), sc, calendar.VoiceInput{Audio: []byte("ogg")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OK() || out.Transcript != "dentist 2026-02-10 at 2" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if len(backend.created) != 1 {
			t.Errorf("expected one create, got %d", len(backend.created))
		}
	})
}

func TestListUpcoming(t *testing.T) {
	backend := &stubBackend{events: []gcalendar.Event{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	uc := newTestUseCase(backend, nil, nil)

	events, err := uc.ListUpcoming(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events, got %d", len(events))
	}

	backend.searchErr = errBoom
	if _, err := uc.ListUpcoming(context.Background(), 0); !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
