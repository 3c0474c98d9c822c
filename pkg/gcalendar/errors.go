package gcalendar

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotFound is returned when the event id does not exist in the calendar.
	ErrNotFound = errors.New("calendar event not found")
	// ErrCalendarNotFound is returned when the calendar id itself is unknown.
	ErrCalendarNotFound = errors.New("calendar not found")
	// ErrUnsupportedCredentials is returned when the credentials are neither a
	// service account key nor installed-app client secrets.
	ErrUnsupportedCredentials = errors.New("unsupported credentials format")
	// ErrRejectedPayload is matched by every RejectedPayloadError.
	ErrRejectedPayload = errors.New("calendar rejected event payload")
)

// RejectedPayloadError carries the request that the backend refused so it can
// be reproduced without querying again.
type RejectedPayloadError struct {
	Summary    string
	Start      time.Time
	End        time.Time
	CalendarID string
	Reason     string
	Err        error
}

func (e *RejectedPayloadError) Error() string {
	return fmt.Sprintf("calendar rejected event payload: summary=%q, start=%q, end=%q, calendar_id=%q, reason=%s",
		e.Summary, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), e.CalendarID, e.Reason)
}

func (e *RejectedPayloadError) Is(target error) bool {
	return target == ErrRejectedPayload
}

func (e *RejectedPayloadError) Unwrap() error {
	return e.Err
}

// isNotFound reports whether err is a 404 or 410 from the Calendar API.
func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
}

// rejectReason extracts a readable reason from an API error.
func rejectReason(err error) (string, bool) {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return "", false
	}
	reason := apiErr.Message
	if len(apiErr.Errors) > 0 && apiErr.Errors[0].Reason != "" {
		reason = fmt.Sprintf("%s: %s", apiErr.Errors[0].Reason, apiErr.Message)
	}
	if reason == "" {
		reason = http.StatusText(apiErr.Code)
	}
	return reason, true
}

func rejected(err error, calendarID, summary string, start, end time.Time) error {
	reason, ok := rejectReason(err)
	if !ok {
		return err
	}
	return &RejectedPayloadError{
		Summary:    summary,
		Start:      start,
		End:        end,
		CalendarID: calendarID,
		Reason:     reason,
		Err:        err,
	}
}
