package datemath

import (
	"errors"
	"time"
)

// ErrMalformedTimestamp is returned when a string does not parse as a date/time.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

const (
	// DefaultFallbackOffset is applied to timestamps that carry no zone.
	DefaultFallbackOffset = time.Hour

	isoDateLayout = "2006-01-02"
)

// zonedLayouts are tried first; Go also accepts a trailing "Z" for Z07:00.
var zonedLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
}

// localLayouts carry no zone and are parsed in the fallback location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	isoDateLayout,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
