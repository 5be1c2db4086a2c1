package openinghours

import (
	"sort"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	monthDayLayout = "01-02"

	// Anchor year used when a recurring "MM-DD to MM-DD" exception range is
	// expanded day by day. Any non-leap year works; only the MM-DD
	// projection of each step is kept.
	recurringAnchorYear = 2019
)

// Definition is the loosely-typed configuration an OpeningHours is built
// from. Keys are weekday names ("monday"), weekday ranges ("monday to
// friday"), or the reserved keys "exceptions", "filters", "overflow" and
// "timezone". Day values may be a []string of "HH:mm-HH:mm" tokens, a list
// mixing tokens with {hours, data} maps, or a single {hours, data} map.
type Definition map[string]interface{}

// Filter maps a calendar date to an optional day override. Filters run
// before the exception tables; the first non-nil result wins and replaces
// the day's schedule entirely. They must be pure and fast: a single search
// can consult them up to 366 times.
type Filter func(date time.Time) *OpeningHoursForDay

// Option configures an OpeningHours at construction time.
type Option func(*OpeningHours)

// WithLocation sets the location query times are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(oh *OpeningHours) { oh.location = loc }
}

// WithOutputLocation sets the location search results are expressed in.
func WithOutputLocation(loc *time.Location) Option {
	return func(oh *OpeningHours) { oh.outputLocation = loc }
}

// WithClock overrides the time source used by IsOpen and the default search
// start. Meant for tests and deterministic callers.
func WithClock(now func() time.Time) Option {
	return func(oh *OpeningHours) { oh.now = now }
}

// OpeningHours is an immutable weekly schedule with date-specific and
// recurring overrides. All queries are safe for concurrent use; Fill
// returns a new instance instead of mutating.
type OpeningHours struct {
	weekdays   map[time.Weekday]OpeningHoursForDay
	exceptions map[string]OpeningHoursForDay
	filters    []Filter

	location       *time.Location
	outputLocation *time.Location

	// overflow is accepted as configuration but does not alter range
	// evaluation: overnight detection is performed range by range.
	overflow bool

	now func() time.Time
}

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Create builds an OpeningHours from a definition. Malformed day or
// exception entries are skipped rather than failing the whole construction;
// strictness belongs to the token-level parse functions.
func Create(definition Definition, opts ...Option) *OpeningHours {
	oh := &OpeningHours{
		weekdays:       make(map[time.Weekday]OpeningHoursForDay, len(weekdayOrder)),
		exceptions:     make(map[string]OpeningHoursForDay),
		location:       time.Local,
		outputLocation: nil,
		now:            time.Now,
	}
	for _, weekday := range weekdayOrder {
		oh.weekdays[weekday] = OpeningHoursForDay{}
	}
	for _, opt := range opts {
		opt(oh)
	}
	oh.fill(definition)
	return oh
}

// Fill rebuilds the schedule from scratch with the same locations and
// clock. It is a full replacement, not a merge: callers wanting additive
// behavior must merge definitions themselves.
func (oh *OpeningHours) Fill(definition Definition) *OpeningHours {
	fresh := Create(definition,
		WithLocation(oh.location),
		WithClock(oh.now),
	)
	fresh.outputLocation = oh.outputLocation
	return fresh
}

func (oh *OpeningHours) fill(definition Definition) {
	for _, key := range orderedKeys(definition) {
		value := definition[key]
		switch strings.ToLower(key) {
		case "exceptions":
			oh.setExceptions(value)
		case "filters":
			oh.setFilters(value)
		case "overflow":
			if flag, ok := value.(bool); ok {
				oh.overflow = flag
			}
		case "timezone":
			if name, ok := value.(string); ok {
				if loc, err := time.LoadLocation(name); err == nil {
					oh.location = loc
				}
			}
		default:
			oh.setDays(key, value)
		}
	}
}

// orderedKeys fixes the apply order of a definition's keys: sorted, with
// range keys ("monday to friday", "01-01 to 01-07") ahead of single keys.
// A single-day or single-date key therefore always overrides whatever a
// broader range key covered, independent of map iteration order.
func orderedKeys(entries map[string]interface{}) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return isRangeKey(keys[i]) && !isRangeKey(keys[j])
	})
	return keys
}

func isRangeKey(key string) bool {
	_, _, ok := splitRangeKey(strings.ToLower(strings.TrimSpace(key)))
	return ok
}

func (oh *OpeningHours) setDays(key string, value interface{}) {
	day := dayFromValue(value)

	lower := strings.ToLower(strings.TrimSpace(key))
	if weekday, ok := weekdayByName[lower]; ok {
		oh.weekdays[weekday] = day
		return
	}

	from, to, ok := splitRangeKey(lower)
	if !ok {
		return
	}
	start, okFrom := weekdayByName[from]
	end, okTo := weekdayByName[to]
	if !okFrom || !okTo {
		return
	}

	// Walk forward day by day so that a wrapped range like "friday to
	// monday" covers friday, saturday, sunday and monday.
	for current := start; ; current = (current + 1) % 7 {
		oh.weekdays[current] = day
		if current == end {
			break
		}
	}
}

func (oh *OpeningHours) setExceptions(value interface{}) {
	entries, ok := value.(map[string]interface{})
	if !ok {
		return
	}
	for _, key := range orderedKeys(entries) {
		day := dayFromValue(entries[key])
		oh.setExceptionKey(strings.TrimSpace(key), day)
	}
}

func (oh *OpeningHours) setExceptionKey(key string, day OpeningHoursForDay) {
	if isDateToken(key) || isMonthDayToken(key) {
		oh.exceptions[key] = day
		return
	}

	from, to, ok := splitRangeKey(key)
	if !ok {
		return
	}

	switch {
	case isDateToken(from) && isDateToken(to):
		start, _ := time.Parse(dateLayout, from)
		end, _ := time.Parse(dateLayout, to)
		if end.Before(start) {
			return
		}
		for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
			oh.exceptions[current.Format(dateLayout)] = day
		}
	case isMonthDayToken(from) && isMonthDayToken(to):
		// Recurring range: walk in the anchor year and store the MM-DD
		// projection of every covered day, wrapping through new year when
		// the end precedes the start.
		start, _ := time.Parse(monthDayLayout, from)
		start = time.Date(recurringAnchorYear, start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		for current, steps := start, 0; steps <= 366; current, steps = current.AddDate(0, 0, 1), steps+1 {
			oh.exceptions[current.Format(monthDayLayout)] = day
			if current.Format(monthDayLayout) == to {
				break
			}
		}
	}
}

func (oh *OpeningHours) setFilters(value interface{}) {
	switch filters := value.(type) {
	case []Filter:
		oh.filters = append(oh.filters, filters...)
	case Filter:
		oh.filters = append(oh.filters, filters)
	case func(date time.Time) *OpeningHoursForDay:
		oh.filters = append(oh.filters, filters)
	case []func(date time.Time) *OpeningHoursForDay:
		for _, filter := range filters {
			oh.filters = append(oh.filters, filter)
		}
	}
}

// dayFromValue normalizes the accepted value shapes into a day schedule.
// Anything malformed degrades to an empty (closed) day.
func dayFromValue(value interface{}) OpeningHoursForDay {
	switch typed := value.(type) {
	case []string:
		day, err := DayFromStrings(typed)
		if err != nil {
			return OpeningHoursForDay{}
		}
		return day
	case []interface{}:
		day := OpeningHoursForDay{}
		for _, item := range typed {
			switch entry := item.(type) {
			case string:
				timeRange, err := ParseTimeRange(entry)
				if err != nil {
					return OpeningHoursForDay{}
				}
				day.Ranges = append(day.Ranges, timeRange)
			case map[string]interface{}:
				ranges, ok := rangesFromHoursMap(entry)
				if !ok {
					return OpeningHoursForDay{}
				}
				day.Ranges = append(day.Ranges, ranges...)
			default:
				return OpeningHoursForDay{}
			}
		}
		return day
	case map[string]interface{}:
		day := OpeningHoursForDay{Data: typed["data"]}
		ranges, ok := rangesFromHoursMap(typed)
		if !ok {
			return OpeningHoursForDay{}
		}
		day.Ranges = ranges
		return day
	default:
		return OpeningHoursForDay{}
	}
}

// rangesFromHoursMap reads a {hours, data} shaped map. "hours" may be a
// single token or a list of tokens; the payload is attached to each range.
func rangesFromHoursMap(entry map[string]interface{}) ([]TimeRange, bool) {
	data := entry["data"]

	var tokens []string
	switch hours := entry["hours"].(type) {
	case string:
		tokens = []string{hours}
	case []string:
		tokens = hours
	case []interface{}:
		for _, hour := range hours {
			token, ok := hour.(string)
			if !ok {
				return nil, false
			}
			tokens = append(tokens, token)
		}
	default:
		return nil, false
	}

	ranges := make([]TimeRange, 0, len(tokens))
	for _, token := range tokens {
		timeRange, err := ParseTimeRange(token)
		if err != nil {
			return nil, false
		}
		timeRange.Data = data
		ranges = append(ranges, timeRange)
	}
	return ranges, true
}

func splitRangeKey(key string) (from, to string, ok bool) {
	parts := strings.Split(key, " to ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func isDateToken(token string) bool {
	_, err := time.Parse(dateLayout, token)
	return err == nil
}

func isMonthDayToken(token string) bool {
	_, err := time.Parse(monthDayLayout, token)
	return err == nil
}

// ForDate resolves the effective day schedule for the given moment:
// filters first (registration order, first non-nil wins), then the exact
// date exception, then the recurring MM-DD exception, then the weekday.
func (oh *OpeningHours) ForDate(t time.Time) OpeningHoursForDay {
	t = t.In(oh.location)

	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for _, filter := range oh.filters {
		if override := filter(date); override != nil {
			return *override
		}
	}

	if day, ok := oh.exceptions[t.Format(dateLayout)]; ok {
		return day
	}
	if day, ok := oh.exceptions[t.Format(monthDayLayout)]; ok {
		return day
	}
	return oh.weekdays[t.Weekday()]
}

// IsOpenAt reports whether the schedule is open at the given moment.
func (oh *OpeningHours) IsOpenAt(t time.Time) bool {
	t = t.In(oh.location)
	return oh.ForDate(t).IsOpenAt(TimeOf(t))
}

// IsClosedAt reports whether the schedule is closed at the given moment.
func (oh *OpeningHours) IsClosedAt(t time.Time) bool {
	return !oh.IsOpenAt(t)
}

// IsOpen reports the state at the current clock time.
func (oh *OpeningHours) IsOpen() bool {
	return oh.IsOpenAt(oh.now().In(oh.location))
}

// IsClosed reports the closed state at the current clock time.
func (oh *OpeningHours) IsClosed() bool {
	return !oh.IsOpen()
}

// IsOpenOn accepts a weekday name or a date token. A weekday name checks
// the base weekly schedule only, ignoring exceptions. A date token (full
// ISO, or MM-DD taken in the current year) resolves through ForDate at
// midnight. Unknown tokens report false.
func (oh *OpeningHours) IsOpenOn(token string) bool {
	lower := strings.ToLower(strings.TrimSpace(token))
	if weekday, ok := weekdayByName[lower]; ok {
		return !oh.weekdays[weekday].IsEmpty()
	}

	if date, err := time.ParseInLocation(dateLayout, token, oh.location); err == nil {
		return !oh.ForDate(date).IsEmpty()
	}
	if monthDay, err := time.Parse(monthDayLayout, token); err == nil {
		date := time.Date(oh.now().In(oh.location).Year(), monthDay.Month(), monthDay.Day(), 0, 0, 0, 0, oh.location)
		return !oh.ForDate(date).IsEmpty()
	}
	return false
}

// IsClosedOn is the negation of IsOpenOn.
func (oh *OpeningHours) IsClosedOn(token string) bool {
	return !oh.IsOpenOn(token)
}

// IsAlwaysOpen reports whether the base weekly schedule covers every moment
// of every day. Any exception or filter disqualifies it, regardless of
// effect.
func (oh *OpeningHours) IsAlwaysOpen() bool {
	if len(oh.exceptions) > 0 || len(oh.filters) > 0 {
		return false
	}
	for _, weekday := range weekdayOrder {
		if !coversFullDay(oh.weekdays[weekday]) {
			return false
		}
	}
	return true
}

// IsAlwaysClosed reports whether the base weekly schedule is empty. Any
// exception or filter disqualifies it, regardless of effect.
func (oh *OpeningHours) IsAlwaysClosed() bool {
	if len(oh.exceptions) > 0 || len(oh.filters) > 0 {
		return false
	}
	for _, weekday := range weekdayOrder {
		if !oh.weekdays[weekday].IsEmpty() {
			return false
		}
	}
	return true
}

func coversFullDay(day OpeningHoursForDay) bool {
	for _, timeRange := range day.Ranges {
		if timeRange.Start.Equal(Midnight) && timeRange.End.IsEndOfDay() {
			return true
		}
	}
	return false
}

// ForDay returns the base weekly schedule for a weekday name.
func (oh *OpeningHours) ForDay(name string) (OpeningHoursForDay, bool) {
	weekday, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return OpeningHoursForDay{}, false
	}
	return oh.weekdays[weekday], true
}

// ForWeek returns the base weekly schedule keyed by weekday name.
func (oh *OpeningHours) ForWeek() map[string]OpeningHoursForDay {
	week := make(map[string]OpeningHoursForDay, len(weekdayOrder))
	for _, weekday := range weekdayOrder {
		week[strings.ToLower(weekday.String())] = oh.weekdays[weekday]
	}
	return week
}

// CombinedDays is a group of weekdays sharing one day schedule.
type CombinedDays struct {
	Days []string
	Day  OpeningHoursForDay
}

// ForWeekCombined groups all weekdays with an identical schedule, in
// monday-first order of first occurrence.
func (oh *OpeningHours) ForWeekCombined() []CombinedDays {
	var groups []CombinedDays
	indexBySignature := make(map[string]int)
	for _, weekday := range weekdayOrder {
		day := oh.weekdays[weekday]
		signature := day.String()
		name := strings.ToLower(weekday.String())
		if index, ok := indexBySignature[signature]; ok {
			groups[index].Days = append(groups[index].Days, name)
			continue
		}
		indexBySignature[signature] = len(groups)
		groups = append(groups, CombinedDays{Days: []string{name}, Day: day})
	}
	return groups
}

// ForWeekConsecutiveDays groups runs of consecutive weekdays with an
// identical schedule.
func (oh *OpeningHours) ForWeekConsecutiveDays() []CombinedDays {
	var groups []CombinedDays
	for _, weekday := range weekdayOrder {
		day := oh.weekdays[weekday]
		name := strings.ToLower(weekday.String())
		if len(groups) > 0 && groups[len(groups)-1].Day.String() == day.String() {
			groups[len(groups)-1].Days = append(groups[len(groups)-1].Days, name)
			continue
		}
		groups = append(groups, CombinedDays{Days: []string{name}, Day: day})
	}
	return groups
}

// Exceptions returns a copy of the exception table, keyed by "YYYY-MM-DD"
// or recurring "MM-DD", in sorted key order when iterated via ExceptionKeys.
func (oh *OpeningHours) Exceptions() map[string]OpeningHoursForDay {
	exceptions := make(map[string]OpeningHoursForDay, len(oh.exceptions))
	for key, day := range oh.exceptions {
		exceptions[key] = day
	}
	return exceptions
}

// ExceptionKeys returns the exception keys in sorted order.
func (oh *OpeningHours) ExceptionKeys() []string {
	keys := make([]string, 0, len(oh.exceptions))
	for key := range oh.exceptions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Location returns the location query times are interpreted in.
func (oh *OpeningHours) Location() *time.Location {
	return oh.location
}
