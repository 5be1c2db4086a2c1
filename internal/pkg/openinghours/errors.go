package openinghours

import (
	"fmt"
	"time"
)

// ParseError reports a malformed time, time-range or date token.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("openinghours: cannot parse %q: %s", e.Token, e.Reason)
}

func newParseError(token, reason string) *ParseError {
	return &ParseError{Token: token, Reason: reason}
}

// MaximumLimitExceeded is returned by the search operations when no matching
// boundary exists within the search window. It is deterministic: the same
// schedule and query always fail the same way.
type MaximumLimitExceeded struct {
	Start time.Time
	Days  int
}

func (e *MaximumLimitExceeded) Error() string {
	return fmt.Sprintf("openinghours: no boundary found within %d days of %s", e.Days, e.Start.Format(time.RFC3339))
}
