package intent

import "errors"

var (
	// ErrMalformedClassification is returned when the classifier output lacks a usable category or action.
	ErrMalformedClassification = errors.New("malformed classification")
)
