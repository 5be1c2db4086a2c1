package openinghours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Time is an immutable wall-clock time with minute resolution. The literal
// "24:00" parses to the end-of-day sentinel, which is strictly greater than
// every ordinary time and distinct from "00:00".
type Time struct {
	minutes int
}

// EndOfDay is the sentinel produced by parsing "24:00".
var EndOfDay = Time{minutes: minutesPerDay}

// Midnight is the start of the day, "00:00".
var Midnight = Time{minutes: 0}

// ParseTime parses a zero-padded "HH:mm" token. "24:00" yields EndOfDay.
func ParseTime(token string) (Time, error) {
	if token == "24:00" {
		return EndOfDay, nil
	}

	parts := strings.Split(token, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return Time{}, newParseError(token, "expected HH:mm")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Time{}, newParseError(token, "hour out of range")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Time{}, newParseError(token, "minute out of range")
	}

	return Time{minutes: hour*60 + minute}, nil
}

// TimeOf extracts the wall-clock time of a native time value.
func TimeOf(t time.Time) Time {
	return Time{minutes: t.Hour()*60 + t.Minute()}
}

func (t Time) Hour() int   { return t.minutes / 60 }
func (t Time) Minute() int { return t.minutes % 60 }

func (t Time) IsEndOfDay() bool { return t.minutes == minutesPerDay }

func (t Time) Before(other Time) bool      { return t.minutes < other.minutes }
func (t Time) After(other Time) bool       { return t.minutes > other.minutes }
func (t Time) SameOrAfter(other Time) bool { return t.minutes >= other.minutes }
func (t Time) Equal(other Time) bool       { return t.minutes == other.minutes }

// String renders the time as "HH:mm"; the sentinel renders as "24:00".
func (t Time) String() string {
	if t.IsEndOfDay() {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format renders the time using a standard library layout. The sentinel is
// rendered as the last representable minute of the day.
func (t Time) Format(layout string) string {
	minutes := t.minutes
	if t.IsEndOfDay() {
		minutes = minutesPerDay - 1
	}
	ref := time.Date(0, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return ref.Format(layout)
}

// on places the wall-clock time on the calendar day of the given date. The
// sentinel lands on midnight of the following day.
func (t Time) on(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, t.minutes, 0, 0, date.Location())
}
