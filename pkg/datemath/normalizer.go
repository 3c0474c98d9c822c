package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	explicitDatePattern = regexp.MustCompile(`(?:^|\D)\d{4}-\d{2}-\d{2}(?:\D|$)`)
	weekdayPattern      = regexp.MustCompile(`(?i)monday|tuesday|wednesday|thursday|friday|saturday|sunday`)
)

// Normalizer turns loosely formatted timestamps into absolute instants.
type Normalizer struct {
	fallback *time.Location
	now      func() time.Time
}

// Option customises a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used to resolve weekday hints.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer creates a Normalizer that assigns fallbackOffset to zone-less input.
func NewNormalizer(fallbackOffset time.Duration, opts ...Option) *Normalizer {
	n := &Normalizer{
		fallback: fixedZone(fallbackOffset),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Location returns the zone applied to timestamps without an offset.
func (n *Normalizer) Location() *time.Location {
	return n.fallback
}

// Normalize parses an ISO-8601-like string. A trailing Z means UTC and a
// missing offset gets the fallback zone.
func (n *Normalizer) Normalize(text string) (time.Time, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrMalformedTimestamp)
	}
	if strings.HasSuffix(value, "z") {
		value = value[:len(value)-1] + "Z"
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, n.fallback); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, text)
}

// AlignToWeekdayHint moves candidate onto the weekday named in userText.
//
// An explicit YYYY-MM-DD date in userText wins over any weekday word. The
// day count is measured from now in the candidate's zone and is 0 when today
// already is the named weekday. Only the calendar date changes; the time of
// day and zone of candidate are kept.
func (n *Normalizer) AlignToWeekdayHint(userText string, candidate time.Time) time.Time {
	if candidate.IsZero() || explicitDatePattern.MatchString(userText) {
		return candidate
	}

	name := weekdayPattern.FindString(userText)
	if name == "" {
		return candidate
	}
	target := weekdays[strings.ToLower(name)]

	loc := candidate.Location()
	if loc == nil {
		loc = time.Local
	}
	now := n.now().In(loc)

	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, daysAhead)

	return time.Date(day.Year(), day.Month(), day.Day(),
		candidate.Hour(), candidate.Minute(), candidate.Second(), candidate.Nanosecond(), loc)
}

func fixedZone(offset time.Duration) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	sign := "+"
	abs := offset
	if offset < 0 {
		sign = "-"
		abs = -offset
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, int(abs.Hours()), int(abs.Minutes())%60)
	return time.FixedZone(name, int(offset.Seconds()))
}
