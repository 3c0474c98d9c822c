package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
)

type mockGenerator struct {
	reply   string
	err     error
	lastReq gemini.GenerateRequest
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Parts: []gemini.Part{{Text: m.reply}}},
	}}}, nil
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 2, 4, 9, 0, 0, 0, time.FixedZone("", 3600))

	tests := []struct {
		name    string
		reply   string
		err     error
		want    string
		wantErr bool
	}{
		{
			name:  "Plain answer",
			reply: "category: calendar\nsubcategory: add\ndescription: name=Dentist,start=2026-02-10T14:00",
			want:  "category: calendar\nsubcategory: add\ndescription: name=Dentist,start=2026-02-10T14:00",
		},
		{
			name:  "Fenced answer",
			reply: "```text\ncategory: list\nsubcategory: none\ndescription:\n```",
			want:  "category: list\nsubcategory: none\ndescription:",
		},
		{
			name:  "Bare fence",
			reply: "```category: message\nsubcategory: none```",
			want:  "category: message\nsubcategory: none",
		},
		{name: "Empty answer", reply: "  ", wantErr: true},
		{name: "LLM failure", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockGenerator{reply: tt.reply, err: tt.err}
			r := New(llm, log.NewNop())

			got, err := r.Classify(context.Background(), "dentist tuesday 2pm", now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}

			prompt := llm.lastReq.Contents[0].Parts[0].Text
			if !strings.Contains(prompt, "dentist tuesday 2pm") {
				t.Error("prompt missing user text")
			}
			if !strings.Contains(prompt, "Wednesday, 2026-02-04T09:00:00+01:00") {
				t.Error("prompt missing current time")
			}
			if llm.lastReq.GenerationConfig.Temperature != RouterTemperature {
				t.Error("unexpected temperature")
			}
		})
	}
}
