package openinghours

import "sort"

// MergeOverlappingRanges normalizes per-day range tokens into a minimal
// sorted set: ranges are ordered by start time, then any overlapping or
// exactly adjacent pair collapses into one range spanning both. Day keys
// are preserved; days without ranges map to an empty list.
func MergeOverlappingRanges(data map[string][]string) (map[string][]string, error) {
	merged := make(map[string][]string, len(data))
	for day, tokens := range data {
		ranges := make([]TimeRange, 0, len(tokens))
		for _, token := range tokens {
			timeRange, err := ParseTimeRange(token)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, timeRange)
		}

		sort.SliceStable(ranges, func(i, j int) bool {
			return ranges[i].Start.Before(ranges[j].Start)
		})

		var result []TimeRange
		for _, timeRange := range ranges {
			if len(result) == 0 {
				result = append(result, timeRange)
				continue
			}
			last := &result[len(result)-1]
			if last.Overlaps(timeRange) || last.End.Equal(timeRange.Start) {
				if timeRange.Start.Before(last.Start) {
					last.Start = timeRange.Start
				}
				if timeRange.End.After(last.End) {
					last.End = timeRange.End
				}
				continue
			}
			result = append(result, timeRange)
		}

		tokens := make([]string, 0, len(result))
		for _, timeRange := range result {
			tokens = append(tokens, timeRange.String())
		}
		merged[day] = tokens
	}
	return merged, nil
}

// CreateAndMergeOverlappingRanges merges a plain weekly map of range tokens
// and builds the schedule from the result.
func CreateAndMergeOverlappingRanges(data map[string][]string, opts ...Option) (*OpeningHours, error) {
	merged, err := MergeOverlappingRanges(data)
	if err != nil {
		return nil, err
	}

	definition := make(Definition, len(merged))
	for day, tokens := range merged {
		definition[day] = tokens
	}
	return Create(definition, opts...), nil
}
