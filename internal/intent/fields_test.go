package intent

import (
	"reflect"
	"testing"
)

func TestExtractFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Fields
	}{
		{
			name: "Labelled add description",
			line: "description: name=Dentist,start=2026-02-10T14:00,end=2026-02-10T15:00,details=Bring x-rays",
			want: Fields{
				"name":    "Dentist",
				"start":   "2026-02-10T14:00",
				"end":     "2026-02-10T15:00",
				"details": "Bring x-rays",
			},
		},
		{
			name: "No equals sign",
			line: "noise",
			want: Fields{},
		},
		{
			name: "Empty line",
			line: "",
			want: Fields{},
		},
		{
			name: "Unlabelled payload keeps time colons",
			line: "name=Standup, start=2026-02-10T09:30",
			want: Fields{"name": "Standup", "start": "2026-02-10T09:30"},
		},
		{
			name: "Keys lowercased and values trimmed",
			line: "description:  NAME = Team sync , Start= 2026-02-10 ",
			want: Fields{"name": "Team sync", "start": "2026-02-10"},
		},
		{
			name: "Stray segments skipped",
			line: "description: name=Gym, tomorrow, =orphan, id=abc",
			want: Fields{"name": "Gym", "id": "abc"},
		},
		{
			name: "Value split on first equals only",
			line: "description: target=Dentist,update=name=Ortho",
			want: Fields{"target": "Dentist", "update": "name=Ortho"},
		},
		{
			name: "Unknown keys retained",
			line: "description: name=Lunch,location=Cafe",
			want: Fields{"name": "Lunch", "location": "Cafe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFields(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractFields(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFieldsGetOnNil(t *testing.T) {
	var f Fields
	if f.Get("name") != "" {
		t.Error("expected empty value from nil Fields")
	}
}
