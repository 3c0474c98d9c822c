package intent

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantCat    Category
		wantAction Action
		wantFields Fields
		wantErr    bool
	}{
		{
			name:       "Calendar add",
			raw:        "category: calendar\nsubcategory: add\ndescription: name=Dentist,start=2026-02-10T14:00",
			wantCat:    CategoryCalendar,
			wantAction: ActionAdd,
			wantFields: Fields{"name": "Dentist", "start": "2026-02-10T14:00"},
		},
		{
			name:       "Mixed case and fences",
			raw:        "```\nCategory: Calendar\nSubcategory: REMOVE\nDescription: name=Gym\n```",
			wantCat:    CategoryCalendar,
			wantAction: ActionRemove,
			wantFields: Fields{"name": "Gym"},
		},
		{
			name:       "Missing description",
			raw:        "category: calendar\nsubcategory: change",
			wantCat:    CategoryCalendar,
			wantAction: ActionChange,
			wantFields: Fields{},
		},
		{
			name:       "Unlabelled lines fill in order",
			raw:        "calendar\nadd\nname=Lunch,start=2026-02-11T12:00",
			wantCat:    CategoryCalendar,
			wantAction: ActionAdd,
			wantFields: Fields{"name": "Lunch", "start": "2026-02-11T12:00"},
		},
		{
			name:    "Message passes through",
			raw:     "category: message\nsubcategory: none\ndescription: hello",
			wantCat: CategoryMessage,
		},
		{
			name:    "List with single line",
			raw:     "category: list",
			wantCat: CategoryList,
		},
		{
			name:       "Unknown action kept verbatim",
			raw:        "category: calendar\nsubcategory: snooze",
			wantCat:    CategoryCalendar,
			wantAction: Action("snooze"),
			wantFields: Fields{},
		},
		{name: "Empty", raw: "", wantErr: true},
		{name: "Calendar without subcategory", raw: "category: calendar", wantErr: true},
		{name: "Unknown category", raw: "category: weather\nsubcategory: add", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedClassification) {
					t.Fatalf("expected ErrMalformedClassification, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCat)
			}
			if tt.wantCat != CategoryCalendar {
				if got.Calendar != nil {
					t.Errorf("expected nil Calendar for %q", got.Category)
				}
				return
			}
			if got.Calendar == nil {
				t.Fatal("expected Calendar intent")
			}
			if got.Calendar.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Calendar.Action, tt.wantAction)
			}
			if len(got.Calendar.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want %v", got.Calendar.Fields, tt.wantFields)
			}
			for k, v := range tt.wantFields {
				if got.Calendar.Fields[k] != v {
					t.Errorf("Fields[%q] = %q, want %q", k, got.Calendar.Fields[k], v)
				}
			}
		})
	}
}

func TestActionKnown(t *testing.T) {
	for _, a := range []Action{ActionAdd, ActionRemove, ActionChange} {
		if !a.Known() {
			t.Errorf("%q should be known", a)
		}
	}
	if Action("snooze").Known() {
		t.Error("snooze should not be known")
	}
}
