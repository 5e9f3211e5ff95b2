package history

import "errors"

// ErrNotFound is returned when a lookup matches no stored record.
// Callers distinguish it from storage failures with errors.Is().
var ErrNotFound = errors.New("analysis record not found")
