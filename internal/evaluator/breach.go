package evaluator

import "github.com/nao1215/passcheck/internal/refdata"

// BreachChecker reports whether a password is known to be compromised.
//
// The check must be synchronous and must not transmit the password
// anywhere. Implementations that consult an external corpus should work
// from local data (a bundled list, an offline dump) rather than a network
// service.
type BreachChecker interface {
	// IsBreached returns true if the password appears in the checker's
	// breach corpus. The comparison is case-insensitive.
	IsBreached(password string) bool
}

// ListBreachChecker answers breach queries from the bundled common
// password list. It is the default BreachChecker: without an external
// corpus, list membership is the only breach signal available, so the
// pwned result mirrors the common password check.
type ListBreachChecker struct {
	data *refdata.ReferenceData
}

// NewListBreachChecker returns a ListBreachChecker backed by data.
func NewListBreachChecker(data *refdata.ReferenceData) *ListBreachChecker {
	return &ListBreachChecker{data: data}
}

// IsBreached returns true if the password is on the common password list.
func (c *ListBreachChecker) IsBreached(password string) bool {
	return c.data.IsCommon(password)
}
