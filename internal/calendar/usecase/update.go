package usecase

import (
	"strings"

	"calendar-assistant/pkg/gcalendar"
)

var updateFieldAliases = map[string]string{
	"name":        "summary",
	"title":       "summary",
	"summary":     "summary",
	"details":     "description",
	"description": "description",
	"start":       "start",
	"end":         "end",
}

// parseUpdate reads the "update" value: ";"-separated "field:value" segments
// where field is one of name|title|summary, details|description, start, end.
// A segment without a known field is a new start when it parses as a
// timestamp, otherwise a new title. Unparseable times are ignored.
func (uc *implUseCase) parseUpdate(raw string) gcalendar.EventPatch {
	var patch gcalendar.EventPatch

	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		field, value := splitUpdateSegment(segment)
		switch field {
		case "summary":
			if value != "" {
				patch.Summary = &value
			}
		case "description":
			patch.Description = &value
		case "start":
			if t, err := uc.dateMath.Normalize(value); err == nil {
				patch.StartTime = &t
			}
		case "end":
			if t, err := uc.dateMath.Normalize(value); err == nil {
				patch.EndTime = &t
			}
		default:
			if t, err := uc.dateMath.Normalize(segment); err == nil {
				patch.StartTime = &t
				continue
			}
			title := segment
			patch.Summary = &title
		}
	}

	return patch
}

// splitUpdateSegment returns the canonical field and value, or "" when the
// segment does not start with a known field.
func splitUpdateSegment(segment string) (string, string) {
	idx := strings.IndexAny(segment, ":=")
	if idx < 0 {
		return "", segment
	}
	field, ok := updateFieldAliases[strings.ToLower(strings.TrimSpace(segment[:idx]))]
	if !ok {
		return "", segment
	}
	return field, strings.TrimSpace(segment[idx+1:])
}
