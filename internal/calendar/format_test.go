package calendar

import (
	"strings"
	"testing"
	"time"

	"calendar-assistant/pkg/gcalendar"
)

func TestFormatWhen(t *testing.T) {
	zone := time.FixedZone("CET", 3600)

	tests := []struct {
		name  string
		event gcalendar.Event
		want  string
	}{
		{
			name: "Same day",
			event: gcalendar.Event{
				StartTime: time.Date(2026, 2, 10, 14, 0, 0, 0, zone),
				EndTime:   time.Date(2026, 2, 10, 15, 30, 0, 0, zone),
			},
			want: "Tue, 10 Feb 2026 14:00-15:30 CET",
		},
		{
			name: "All day",
			event: gcalendar.Event{
				AllDay:    true,
				StartTime: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			},
			want: "Tue, 10 Feb 2026 (all day)",
		},
		{
			name: "Spanning days",
			event: gcalendar.Event{
				StartTime: time.Date(2026, 2, 10, 22, 0, 0, 0, zone),
				EndTime:   time.Date(2026, 2, 11, 1, 0, 0, 0, zone),
			},
			want: "Tue, 10 Feb 2026 22:00 CET - Wed, 11 Feb 2026 01:00 CET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWhen(tt.event); got != tt.want {
				t.Errorf("FormatWhen() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEventList(t *testing.T) {
	if got := FormatEventList(nil); got != "No upcoming events." {
		t.Errorf("unexpected empty list text: %q", got)
	}

	start := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	got := FormatEventList([]gcalendar.Event{
		{Summary: "Dentist", StartTime: start, EndTime: start.Add(time.Hour)},
		{StartTime: start.Add(24 * time.Hour), EndTime: start.Add(25 * time.Hour)},
	})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 lines, got %q", got)
	}
	if !strings.HasSuffix(lines[1], "| Dentist") || !strings.HasSuffix(lines[2], "| (no title)") {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestMissingFieldsError(t *testing.T) {
	err := &MissingFieldsError{Action: "add", Fields: []string{"name", "start"}}
	if err.Error() != "missing required field(s) for add: name, start" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
