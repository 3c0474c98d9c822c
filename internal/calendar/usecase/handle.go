package usecase

import (
	"context"
	"strings"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/internal/model"
)

// Handle classifies text and dispatches the resulting intent.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input calendar.HandleInput) (calendar.Outcome, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return calendar.Outcome{}, calendar.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Handle: user=%s input_length=%d", sc.UserID, len(text))

	raw, err := uc.classifier.Classify(ctx, text, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "Handle: classifier failed: %v", err)
		return classificationFailure(err), nil
	}

	in, err := intent.Parse(raw)
	if err != nil {
		uc.l.Warnf(ctx, "Handle: unusable classification %q: %v", raw, err)
		return classificationFailure(err), nil
	}

	return uc.Dispatch(ctx, sc, in, text), nil
}

// HandleVoice transcribes audio and handles the transcript. Missing audio,
// silence or unintelligible speech is reported as a failed outcome, not an error.
func (uc *implUseCase) HandleVoice(ctx context.Context, sc model.Scope, input calendar.VoiceInput) (calendar.Outcome, error) {
	if len(input.Audio) == 0 {
		return calendar.Outcome{Kind: calendar.OutcomeFailure, Message: msgCouldNotUnderstand, Err: calendar.ErrEmptyInput}, nil
	}

	text, err := uc.transcriber.Transcribe(ctx, input.Audio, input.MimeType)
	if err != nil {
		uc.l.Errorf(ctx, "HandleVoice: transcription failed: %v", err)
		return calendar.Outcome{Kind: calendar.OutcomeFailure, Message: msgCouldNotUnderstand, Err: err}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return calendar.Outcome{Kind: calendar.OutcomeFailure, Message: msgCouldNotUnderstand}, nil
	}

	uc.l.Infof(ctx, "HandleVoice: user=%s transcript_length=%d", sc.UserID, len(text))

	out, err := uc.Handle(ctx, sc, calendar.HandleInput{Text: text})
	if err != nil {
		return out, err
	}
	out.Transcript = text
	return out, nil
}

func classificationFailure(err error) calendar.Outcome {
	return calendar.Outcome{
		Kind:    calendar.OutcomeFailure,
		Message: msgClassifierDown,
		Err:     err,
	}
}
