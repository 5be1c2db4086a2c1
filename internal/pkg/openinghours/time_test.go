package openinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Run("Valid Tokens", func(t *testing.T) {
		parsed, err := ParseTime("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())
		assert.Equal(t, "09:30", parsed.String())
	})

	t.Run("End Of Day Sentinel", func(t *testing.T) {
		parsed, err := ParseTime("24:00")
		require.NoError(t, err)
		assert.True(t, parsed.IsEndOfDay())
		assert.Equal(t, "24:00", parsed.String())

		midnight, err := ParseTime("00:00")
		require.NoError(t, err)
		assert.False(t, midnight.IsEndOfDay(), "00:00 must stay distinct from 24:00")
		assert.True(t, parsed.After(midnight))
	})

	t.Run("Sentinel Is Maximal", func(t *testing.T) {
		lastMinute, err := ParseTime("23:59")
		require.NoError(t, err)
		assert.True(t, EndOfDay.After(lastMinute))
		assert.True(t, lastMinute.Before(EndOfDay))
		assert.True(t, EndOfDay.SameOrAfter(EndOfDay))
	})

	t.Run("Malformed Tokens", func(t *testing.T) {
		for _, token := range []string{"", "9:00", "09:0", "25:00", "09:60", "ab:cd", "09-00", "24:01"} {
			_, err := ParseTime(token)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr, "token %q should fail", token)
		}
	})
}

func TestTimeOrdering(t *testing.T) {
	early, err := ParseTime("08:00")
	require.NoError(t, err)
	late, err := ParseTime("17:00")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.False(t, early.After(late))
	assert.True(t, late.SameOrAfter(early))
	assert.True(t, late.SameOrAfter(late))
	assert.True(t, early.Equal(early))
	assert.False(t, early.Equal(late))
}

func TestTimeOf(t *testing.T) {
	moment := time.Date(2016, time.December, 26, 11, 45, 59, 0, time.UTC)
	wallClock := TimeOf(moment)
	assert.Equal(t, "11:45", wallClock.String(), "seconds are dropped")
}

func TestTimeFormat(t *testing.T) {
	parsed, err := ParseTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", parsed.Format("15:04"))
	assert.Equal(t, "9:05AM", parsed.Format("3:04PM"))
}
