package pipeline

import "errors"

// Password list reading errors.
var (
	// ErrLineTooLong is returned when a candidate exceeds the maximum
	// line length.
	ErrLineTooLong = errors.New("password list line exceeds maximum length")

	// ErrTooManyCandidates is returned when the list exceeds the
	// candidate cap.
	ErrTooManyCandidates = errors.New("password list exceeds maximum candidate count")
)
