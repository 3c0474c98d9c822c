package intent

import "strings"

// ExtractFields parses "key=value,key=value" text, optionally prefixed with a
// label such as "description:". Segments without "=" or with an empty key are
// skipped. It never fails.
func ExtractFields(line string) Fields {
	fields := Fields{}

	payload := line
	if colon := strings.Index(payload, ":"); colon >= 0 {
		eq := strings.Index(payload, "=")
		if eq < 0 || colon < eq {
			payload = payload[colon+1:]
		}
	}

	for _, segment := range strings.Split(payload, ",") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}

	return fields
}
