package openinghours

import "strings"

// OpeningHoursForDay is the ordered set of open time ranges applying to one
// calendar day, plus an optional opaque payload. Ranges keep their input
// order; they are not sorted or merged here (see MergeOverlappingRanges).
// The zero value means closed all day. Instances are read-only after
// construction, so sharing one across several weekday slots is safe.
type OpeningHoursForDay struct {
	Ranges []TimeRange
	Data   interface{}
}

// DayFromStrings parses each "HH:mm-HH:mm" token into a range.
func DayFromStrings(tokens []string) (OpeningHoursForDay, error) {
	day := OpeningHoursForDay{}
	for _, token := range tokens {
		timeRange, err := ParseTimeRange(token)
		if err != nil {
			return OpeningHoursForDay{}, err
		}
		day.Ranges = append(day.Ranges, timeRange)
	}
	return day, nil
}

// IsOpenAt reports whether any range contains the wall-clock time.
func (d OpeningHoursForDay) IsOpenAt(t Time) bool {
	for _, timeRange := range d.Ranges {
		if timeRange.ContainsTime(t) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the day has no open ranges at all.
func (d OpeningHoursForDay) IsEmpty() bool {
	return len(d.Ranges) == 0
}

// Strings renders the ranges back to their "HH:mm-HH:mm" tokens.
func (d OpeningHoursForDay) Strings() []string {
	tokens := make([]string, 0, len(d.Ranges))
	for _, timeRange := range d.Ranges {
		tokens = append(tokens, timeRange.String())
	}
	return tokens
}

func (d OpeningHoursForDay) String() string {
	return strings.Join(d.Strings(), ",")
}
