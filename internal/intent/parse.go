package intent

import (
	"fmt"
	"strings"
)

const (
	labelCategory    = "category"
	labelSubcategory = "subcategory"
	labelDescription = "description"
)

// Parse validates the classifier's three-line answer:
//
//	category: <word>
//	subcategory: <word>
//	description: <text>
//
// Lines may come in any order and the description may be missing. Unlabelled
// lines are assigned to the first label not yet seen, in the order above.
func Parse(raw string) (Intent, error) {
	values := map[string]string{}
	order := []string{labelCategory, labelSubcategory, labelDescription}

	for _, line := range strings.Split(cleanFences(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		label, value, ok := splitLabel(line)
		if !ok {
			label = nextLabel(order, values)
			if label == "" {
				continue
			}
			value = line
		}
		if _, seen := values[label]; seen {
			continue
		}
		values[label] = value
	}

	category := Category(strings.ToLower(values[labelCategory]))
	switch category {
	case CategoryMessage, CategoryList:
		return Intent{Category: category}, nil
	case CategoryCalendar:
	case "":
		return Intent{}, fmt.Errorf("%w: missing category", ErrMalformedClassification)
	default:
		return Intent{}, fmt.Errorf("%w: unknown category %q", ErrMalformedClassification, values[labelCategory])
	}

	action := strings.ToLower(values[labelSubcategory])
	if action == "" {
		return Intent{}, fmt.Errorf("%w: missing subcategory", ErrMalformedClassification)
	}

	description := values[labelDescription]
	return Intent{
		Category: CategoryCalendar,
		Calendar: &CalendarIntent{
			Action:      Action(action),
			Description: description,
			Fields:      ExtractFields(description),
		},
	}, nil
}

// splitLabel recognises "category:", "subcategory:" and "description:" prefixes.
func splitLabel(line string) (string, string, bool) {
	head, tail, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	label := strings.ToLower(strings.Trim(strings.TrimSpace(head), "*-# "))
	switch label {
	case labelCategory, labelSubcategory, labelDescription:
		return label, strings.TrimSpace(tail), true
	}
	return "", "", false
}

func nextLabel(order []string, seen map[string]string) string {
	for _, label := range order {
		if _, ok := seen[label]; !ok {
			return label
		}
	}
	return ""
}

func cleanFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```text")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return raw
}
