package openinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverlappingRanges(t *testing.T) {
	t.Run("Overlapping Pair", func(t *testing.T) {
		merged, err := MergeOverlappingRanges(map[string][]string{
			"monday": {"08:00-11:00", "10:00-12:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"monday": {"08:00-12:00"}}, merged)
	})

	t.Run("Adjacent Ranges Collapse", func(t *testing.T) {
		merged, err := MergeOverlappingRanges(map[string][]string{
			"monday": {"08:00-10:00", "10:00-12:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"monday": {"08:00-12:00"}}, merged)
	})

	t.Run("Disjoint Ranges Stay Apart And Get Sorted", func(t *testing.T) {
		merged, err := MergeOverlappingRanges(map[string][]string{
			"monday": {"13:00-18:00", "09:00-12:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"monday": {"09:00-12:00", "13:00-18:00"}}, merged)
	})

	t.Run("Chained Overlaps", func(t *testing.T) {
		merged, err := MergeOverlappingRanges(map[string][]string{
			"monday": {"08:00-10:00", "09:00-12:00", "11:30-14:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"monday": {"08:00-14:00"}}, merged)
	})

	t.Run("Empty Day Stays Empty", func(t *testing.T) {
		merged, err := MergeOverlappingRanges(map[string][]string{
			"monday": {},
			"sunday": {"10:00-12:00"},
		})
		require.NoError(t, err)
		assert.Empty(t, merged["monday"])
		assert.Equal(t, []string{"10:00-12:00"}, merged["sunday"])
	})

	t.Run("Idempotent", func(t *testing.T) {
		input := map[string][]string{
			"monday":  {"08:00-11:00", "10:00-12:00", "14:00-16:00"},
			"tuesday": {"22:00-24:00"},
		}
		once, err := MergeOverlappingRanges(input)
		require.NoError(t, err)
		twice, err := MergeOverlappingRanges(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("Parse Errors Propagate", func(t *testing.T) {
		_, err := MergeOverlappingRanges(map[string][]string{
			"monday": {"garbage"},
		})
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestCreateAndMergeOverlappingRanges(t *testing.T) {
	oh, err := CreateAndMergeOverlappingRanges(map[string][]string{
		"monday": {"08:00-11:00", "10:00-12:00"},
	}, WithLocation(time.UTC))
	require.NoError(t, err)

	day, ok := oh.ForDay("monday")
	require.True(t, ok)
	require.Len(t, day.Ranges, 1)
	assert.Equal(t, "08:00-12:00", day.Ranges[0].String())
}
