package openinghours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, token string) Time {
	t.Helper()
	parsed, err := ParseTime(token)
	require.NoError(t, err)
	return parsed
}

func mustRange(t *testing.T, token string) TimeRange {
	t.Helper()
	parsed, err := ParseTimeRange(token)
	require.NoError(t, err)
	return parsed
}

func TestParseTimeRange(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		for _, token := range []string{"09:00-12:00", "13:00-18:00", "22:00-02:00", "00:00-24:00"} {
			parsed, err := ParseTimeRange(token)
			require.NoError(t, err)
			assert.Equal(t, token, parsed.String())
		}
	})

	t.Run("Malformed Tokens", func(t *testing.T) {
		for _, token := range []string{"", "09:00", "09:00-12:00-13:00", "09:00~12:00", "xx:00-12:00"} {
			_, err := ParseTimeRange(token)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr, "token %q should fail", token)
		}
	})
}

func TestTimeRangeContainsTime(t *testing.T) {
	t.Run("Ordinary Range Is Half Open", func(t *testing.T) {
		timeRange := mustRange(t, "09:00-17:00")
		assert.True(t, timeRange.ContainsTime(mustTime(t, "09:00")), "start is inclusive")
		assert.True(t, timeRange.ContainsTime(mustTime(t, "12:30")))
		assert.False(t, timeRange.ContainsTime(mustTime(t, "17:00")), "end is exclusive")
		assert.False(t, timeRange.ContainsTime(mustTime(t, "08:59")))
	})

	t.Run("Overnight Range", func(t *testing.T) {
		timeRange := mustRange(t, "22:00-02:00")
		for _, token := range []string{"23:00", "00:30", "01:59", "22:00"} {
			assert.True(t, timeRange.ContainsTime(mustTime(t, token)), "should contain %s", token)
		}
		for _, token := range []string{"02:00", "10:00", "21:59"} {
			assert.False(t, timeRange.ContainsTime(mustTime(t, token)), "should not contain %s", token)
		}
	})

	t.Run("Range Ending At End Of Day", func(t *testing.T) {
		timeRange := mustRange(t, "22:00-24:00")
		assert.True(t, timeRange.ContainsTime(mustTime(t, "23:59")))
		assert.False(t, timeRange.ContainsTime(mustTime(t, "00:00")), "next-day midnight belongs to the next day's schedule")
		assert.False(t, timeRange.Spillover())
	})

	t.Run("Spillover Detection", func(t *testing.T) {
		assert.True(t, mustRange(t, "22:00-02:00").Spillover())
		assert.False(t, mustRange(t, "09:00-17:00").Spillover())
	})
}

func TestTimeRangeOverlaps(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		assert.True(t, mustRange(t, "08:00-11:00").Overlaps(mustRange(t, "10:00-12:00")))
		assert.True(t, mustRange(t, "10:00-12:00").Overlaps(mustRange(t, "08:00-11:00")))
		assert.True(t, mustRange(t, "08:00-18:00").Overlaps(mustRange(t, "10:00-12:00")), "full containment counts")
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.False(t, mustRange(t, "08:00-10:00").Overlaps(mustRange(t, "11:00-12:00")))
	})
}
