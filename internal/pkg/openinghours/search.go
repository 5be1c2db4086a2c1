package openinghours

import "time"

// maxSearchDays bounds every directional search. A weekly schedule with
// yearly recurring exceptions repeats within this window, so a fruitless
// walk past it can never succeed.
const maxSearchDays = 366

// SearchOption bounds a directional search.
type SearchOption func(*searchConfig)

type searchConfig struct {
	limit    time.Time
	hasLimit bool
	cap      time.Time
	hasCap   bool
}

// SearchUntil bounds the search: a forward search must not land after the
// given moment, a backward search must not land before it. A search that
// would cross the bound fails with MaximumLimitExceeded unless SearchCap
// was also supplied.
func SearchUntil(t time.Time) SearchOption {
	return func(cfg *searchConfig) {
		cfg.limit = t
		cfg.hasLimit = true
	}
}

// SearchCap substitutes the given value for the MaximumLimitExceeded
// failure, turning an exhausted or out-of-bounds search into a plain
// result.
func SearchCap(t time.Time) SearchOption {
	return func(cfg *searchConfig) {
		cfg.cap = t
		cfg.hasCap = true
	}
}

// NextOpen returns the first moment strictly after t at which the schedule
// transitions to open.
func (oh *OpeningHours) NextOpen(t time.Time, opts ...SearchOption) (time.Time, error) {
	return oh.search(t, forward, openBoundary, opts)
}

// NextClose returns the first moment strictly after t at which the schedule
// transitions to closed. If t sits inside an open range the result is that
// range's end.
func (oh *OpeningHours) NextClose(t time.Time, opts ...SearchOption) (time.Time, error) {
	return oh.search(t, forward, closeBoundary, opts)
}

// PreviousOpen returns the last open boundary strictly before t.
func (oh *OpeningHours) PreviousOpen(t time.Time, opts ...SearchOption) (time.Time, error) {
	return oh.search(t, backward, openBoundary, opts)
}

// PreviousClose returns the last close boundary strictly before t.
func (oh *OpeningHours) PreviousClose(t time.Time, opts ...SearchOption) (time.Time, error) {
	return oh.search(t, backward, closeBoundary, opts)
}

type direction int

const (
	forward direction = iota
	backward
)

type boundary int

const (
	openBoundary boundary = iota
	closeBoundary
)

func (oh *OpeningHours) search(t time.Time, dir direction, target boundary, opts []SearchOption) (time.Time, error) {
	cfg := searchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	query := t.In(oh.location)
	cursor := query
	for day := 0; day < maxSearchDays; day++ {
		if found, ok := oh.boundaryOnDay(cursor, query, dir, target); ok {
			if cfg.hasLimit && outOfBounds(found, cfg.limit, dir) {
				break
			}
			return oh.output(found), nil
		}

		if dir == forward {
			cursor = startOfNextDay(cursor)
		} else {
			cursor = endOfPreviousDay(cursor)
		}
		if cfg.hasLimit && outOfBounds(cursor, cfg.limit, dir) {
			break
		}
	}

	if cfg.hasCap {
		return oh.output(cfg.cap), nil
	}
	return time.Time{}, &MaximumLimitExceeded{Start: t, Days: maxSearchDays}
}

// boundaryOnDay scans the cursor day's ranges for the first boundary
// strictly beyond the original query instant. Comparing materialized
// instants rather than wall-clock marks keeps day-start boundaries
// (00:00 opens) and sentinel ends (24:00, which lands on the next
// midnight) reachable once the cursor has moved past the query day.
func (oh *OpeningHours) boundaryOnDay(cursor, query time.Time, dir direction, target boundary) (time.Time, bool) {
	day := oh.ForDate(cursor)
	now := TimeOf(cursor)

	// Being inside an open range short-circuits a forward close search:
	// the range's own end is the next close, adjusted a day forward when
	// the range spills past midnight.
	if dir == forward && target == closeBoundary {
		for _, timeRange := range day.Ranges {
			if timeRange.ContainsTime(now) {
				_, end := rangeBoundsOn(cursor, timeRange, now)
				return end, true
			}
		}
	}

	if dir == forward {
		for _, timeRange := range day.Ranges {
			if candidate, ok := boundaryAfter(cursor, timeRange, query, target); ok {
				return candidate, true
			}
		}
		return time.Time{}, false
	}

	for i := len(day.Ranges) - 1; i >= 0; i-- {
		if candidate, ok := boundaryBefore(cursor, day.Ranges[i], query, target); ok {
			return candidate, true
		}
	}
	return time.Time{}, false
}

func boundaryAfter(cursor time.Time, timeRange TimeRange, query time.Time, target boundary) (time.Time, bool) {
	mark := timeRange.Start
	if target == closeBoundary {
		mark = timeRange.End
	}
	candidate := mark.on(cursor)
	if !candidate.After(query) {
		return time.Time{}, false
	}
	return candidate, true
}

func boundaryBefore(cursor time.Time, timeRange TimeRange, query time.Time, target boundary) (time.Time, bool) {
	mark := timeRange.Start
	if target == closeBoundary {
		mark = timeRange.End
	}
	candidate := mark.on(cursor)
	if !candidate.Before(query) {
		return time.Time{}, false
	}
	return candidate, true
}

// CurrentOpenRange returns the range containing the given moment, if any.
func (oh *OpeningHours) CurrentOpenRange(t time.Time) (TimeRange, bool) {
	t = t.In(oh.location)
	day := oh.ForDate(t)
	now := TimeOf(t)
	for _, timeRange := range day.Ranges {
		if timeRange.ContainsTime(now) {
			return timeRange, true
		}
	}
	return TimeRange{}, false
}

// CurrentOpenRangeStart returns the moment the current open period began.
func (oh *OpeningHours) CurrentOpenRangeStart(t time.Time) (time.Time, bool) {
	t = t.In(oh.location)
	timeRange, ok := oh.CurrentOpenRange(t)
	if !ok {
		return time.Time{}, false
	}
	start, _ := rangeBoundsOn(t, timeRange, TimeOf(t))
	return oh.output(start), true
}

// CurrentOpenRangeEnd returns the moment the current open period ends, a
// day forward when the range spills past midnight.
func (oh *OpeningHours) CurrentOpenRangeEnd(t time.Time) (time.Time, bool) {
	t = t.In(oh.location)
	timeRange, ok := oh.CurrentOpenRange(t)
	if !ok {
		return time.Time{}, false
	}
	_, end := rangeBoundsOn(t, timeRange, TimeOf(t))
	return oh.output(end), true
}

// rangeBoundsOn materializes a range's boundaries around the matched day.
// For a range spanning midnight matched on its early-morning side, the
// start belongs to the previous calendar day; matched on its evening side,
// the end belongs to the following day.
func rangeBoundsOn(cursor time.Time, timeRange TimeRange, now Time) (start, end time.Time) {
	if timeRange.Spillover() {
		if now.Before(timeRange.End) {
			return timeRange.Start.on(cursor.AddDate(0, 0, -1)), timeRange.End.on(cursor)
		}
		return timeRange.Start.on(cursor), timeRange.End.on(cursor.AddDate(0, 0, 1))
	}
	return timeRange.Start.on(cursor), timeRange.End.on(cursor)
}

func (oh *OpeningHours) output(t time.Time) time.Time {
	if oh.outputLocation != nil {
		return t.In(oh.outputLocation)
	}
	return t
}

func outOfBounds(t, limit time.Time, dir direction) bool {
	if dir == forward {
		return t.After(limit)
	}
	return t.Before(limit)
}

func startOfNextDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

func endOfPreviousDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day-1, 23, 59, 59, 0, t.Location())
}
