package openinghours

import (
	"fmt"
	"strings"
)

// TimeRange is an ordered pair of wall-clock times with an optional opaque
// payload. When End precedes Start the range spans midnight into the
// following day. The payload is carried, never interpreted.
type TimeRange struct {
	Start Time
	End   Time
	Data  interface{}
}

// ParseTimeRange parses a "HH:mm-HH:mm" token.
func ParseTimeRange(token string) (TimeRange, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return TimeRange{}, newParseError(token, "expected HH:mm-HH:mm")
	}

	start, err := ParseTime(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTime(parts[1])
	if err != nil {
		return TimeRange{}, err
	}

	return TimeRange{Start: start, End: end}, nil
}

// Spillover reports whether the range crosses midnight into the next day.
func (r TimeRange) Spillover() bool {
	return r.End.Before(r.Start)
}

// ContainsTime reports whether the wall-clock time falls inside the range.
// Ordinary ranges are half-open: Start inclusive, End exclusive. A range
// spanning midnight matches times at or after Start as well as times before
// End on the far side of midnight.
func (r TimeRange) ContainsTime(t Time) bool {
	if r.Spillover() {
		return t.SameOrAfter(r.Start) || t.Before(r.End)
	}
	return t.SameOrAfter(r.Start) && t.Before(r.End)
}

// Overlaps reports whether any endpoint of either range falls within the
// other.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.ContainsTime(other.Start) || r.ContainsTime(other.End) ||
		other.ContainsTime(r.Start) || other.ContainsTime(r.End)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
