package openinghours

import (
	"sort"
	"time"
)

// DiffInOpenSeconds returns the open wall-clock seconds elapsed between
// start and end. A reversed interval yields the negated result of the
// swapped one.
func (oh *OpeningHours) DiffInOpenSeconds(start, end time.Time) float64 {
	return oh.diffInSeconds(start, end, true)
}

// DiffInOpenMinutes returns DiffInOpenSeconds divided into minutes.
func (oh *OpeningHours) DiffInOpenMinutes(start, end time.Time) float64 {
	return oh.DiffInOpenSeconds(start, end) / 60
}

// DiffInOpenHours returns DiffInOpenSeconds divided into hours.
func (oh *OpeningHours) DiffInOpenHours(start, end time.Time) float64 {
	return oh.DiffInOpenSeconds(start, end) / 3600
}

// DiffInClosedSeconds returns the closed wall-clock seconds elapsed between
// start and end.
func (oh *OpeningHours) DiffInClosedSeconds(start, end time.Time) float64 {
	return oh.diffInSeconds(start, end, false)
}

// DiffInClosedMinutes returns DiffInClosedSeconds divided into minutes.
func (oh *OpeningHours) DiffInClosedMinutes(start, end time.Time) float64 {
	return oh.DiffInClosedSeconds(start, end) / 60
}

// DiffInClosedHours returns DiffInClosedSeconds divided into hours.
func (oh *OpeningHours) DiffInClosedHours(start, end time.Time) float64 {
	return oh.DiffInClosedSeconds(start, end) / 3600
}

func (oh *OpeningHours) diffInSeconds(start, end time.Time, open bool) float64 {
	if end.Before(start) {
		return -oh.diffInSeconds(end, start, open)
	}

	start = start.In(oh.location)
	end = end.In(oh.location)

	var total float64
	for cursor := start; cursor.Before(end); {
		segmentEnd := startOfNextDay(cursor)
		if segmentEnd.After(end) {
			segmentEnd = end
		}
		total += oh.stateSecondsInSegment(cursor, segmentEnd, open)
		cursor = segmentEnd
	}
	return total
}

// stateSecondsInSegment accumulates the seconds within one day-local
// segment during which the open state equals the target. Range boundaries
// are the only state-change points inside a day, so the segment is cut at
// each boundary and sampled once per piece.
func (oh *OpeningHours) stateSecondsInSegment(segmentStart, segmentEnd time.Time, open bool) float64 {
	day := oh.ForDate(segmentStart)

	points := []time.Time{segmentStart, segmentEnd}
	for _, timeRange := range day.Ranges {
		for _, mark := range []Time{timeRange.Start, timeRange.End} {
			point := mark.on(segmentStart)
			if point.After(segmentStart) && point.Before(segmentEnd) {
				points = append(points, point)
			}
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })

	var total float64
	for i := 0; i < len(points)-1; i++ {
		if points[i].Equal(points[i+1]) {
			continue
		}
		if oh.IsOpenAt(points[i]) == open {
			total += points[i+1].Sub(points[i]).Seconds()
		}
	}
	return total
}
