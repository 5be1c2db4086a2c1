package openinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklySchedule(opts ...Option) *OpeningHours {
	definition := Definition{
		"monday": []string{"09:00-12:00", "13:00-18:00"},
		"exceptions": map[string]interface{}{
			"2016-12-25": []string{},
		},
	}
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return Create(definition, opts...)
}

func TestCreate(t *testing.T) {
	t.Run("All Weekdays Present", func(t *testing.T) {
		oh := Create(Definition{}, WithLocation(time.UTC))
		week := oh.ForWeek()
		require.Len(t, week, 7)
		for name, day := range week {
			assert.True(t, day.IsEmpty(), "%s should default to closed", name)
		}
	})

	t.Run("Day Range Key", func(t *testing.T) {
		oh := Create(Definition{
			"monday to friday": []string{"09:00-17:00"},
		}, WithLocation(time.UTC))

		for _, name := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
			assert.True(t, oh.IsOpenOn(name), "%s should be open", name)
		}
		assert.False(t, oh.IsOpenOn("saturday"))
		assert.False(t, oh.IsOpenOn("sunday"))
	})

	t.Run("Day Range Key Wraps", func(t *testing.T) {
		oh := Create(Definition{
			"friday to monday": []string{"10:00-16:00"},
		}, WithLocation(time.UTC))

		for _, name := range []string{"friday", "saturday", "sunday", "monday"} {
			assert.True(t, oh.IsOpenOn(name), "%s should be open", name)
		}
		assert.False(t, oh.IsOpenOn("tuesday"))
	})

	t.Run("Hours Map Shape Carries Data", func(t *testing.T) {
		oh := Create(Definition{
			"monday": map[string]interface{}{
				"hours": []interface{}{"09:00-12:00"},
				"data":  "by appointment",
			},
		}, WithLocation(time.UTC))

		day, ok := oh.ForDay("monday")
		require.True(t, ok)
		require.Len(t, day.Ranges, 1)
		assert.Equal(t, "by appointment", day.Data)
		assert.Equal(t, "by appointment", day.Ranges[0].Data)
	})

	t.Run("Mixed List Shape", func(t *testing.T) {
		oh := Create(Definition{
			"tuesday": []interface{}{
				"09:00-12:00",
				map[string]interface{}{"hours": "13:00-18:00", "data": "afternoon"},
			},
		}, WithLocation(time.UTC))

		day, ok := oh.ForDay("tuesday")
		require.True(t, ok)
		require.Len(t, day.Ranges, 2)
		assert.Nil(t, day.Ranges[0].Data)
		assert.Equal(t, "afternoon", day.Ranges[1].Data)
	})

	t.Run("Malformed Entries Degrade To Closed", func(t *testing.T) {
		oh := Create(Definition{
			"monday":    []string{"not a range"},
			"blursday":  []string{"09:00-12:00"},
			"wednesday": 42,
		}, WithLocation(time.UTC))

		assert.False(t, oh.IsOpenOn("monday"))
		assert.False(t, oh.IsOpenOn("wednesday"))
	})

	t.Run("Case Insensitive Keys", func(t *testing.T) {
		oh := Create(Definition{
			"Monday": []string{"09:00-12:00"},
		}, WithLocation(time.UTC))
		assert.True(t, oh.IsOpenOn("monday"))
	})
}

func TestExceptions(t *testing.T) {
	t.Run("Exact Date Beats Recurring", func(t *testing.T) {
		oh := Create(Definition{
			"exceptions": map[string]interface{}{
				"2016-12-25": []string{"10:00-12:00"},
				"12-25":      []string{},
			},
		}, WithLocation(time.UTC))

		day := oh.ForDate(time.Date(2016, time.December, 25, 0, 0, 0, 0, time.UTC))
		require.Len(t, day.Ranges, 1)
		assert.Equal(t, "10:00-12:00", day.Ranges[0].String())

		// Other years fall through to the recurring entry.
		otherYear := oh.ForDate(time.Date(2017, time.December, 25, 0, 0, 0, 0, time.UTC))
		assert.True(t, otherYear.IsEmpty())
	})

	t.Run("Recurring Exception Matches Every Year", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"09:00-17:00"},
			"exceptions": map[string]interface{}{
				"01-01": []string{},
			},
		}, WithLocation(time.UTC))

		assert.True(t, oh.IsClosedAt(time.Date(2016, time.January, 1, 12, 0, 0, 0, time.UTC)))
		assert.True(t, oh.IsClosedAt(time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("Date Range Exception Expands Inclusively", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"09:00-17:00"},
			"exceptions": map[string]interface{}{
				"2016-12-24 to 2016-12-26": []string{},
			},
		}, WithLocation(time.UTC))

		for day := 24; day <= 26; day++ {
			assert.True(t, oh.IsClosedAt(time.Date(2016, time.December, day, 12, 0, 0, 0, time.UTC)), "dec %d", day)
		}
		assert.True(t, oh.IsOpenAt(time.Date(2016, time.December, 27, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("Recurring Range Exception", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"09:00-17:00"},
			"exceptions": map[string]interface{}{
				"12-24 to 12-26": []string{},
			},
		}, WithLocation(time.UTC))

		assert.True(t, oh.IsClosedAt(time.Date(2016, time.December, 25, 12, 0, 0, 0, time.UTC)))
		assert.True(t, oh.IsClosedAt(time.Date(2023, time.December, 26, 12, 0, 0, 0, time.UTC)))
		assert.True(t, oh.IsOpenAt(time.Date(2023, time.December, 27, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("Recurring Range Wraps Year End", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"09:00-17:00"},
			"exceptions": map[string]interface{}{
				"12-30 to 01-02": []string{},
			},
		}, WithLocation(time.UTC))

		assert.True(t, oh.IsClosedAt(time.Date(2016, time.December, 31, 12, 0, 0, 0, time.UTC)))
		assert.True(t, oh.IsClosedAt(time.Date(2017, time.January, 1, 12, 0, 0, 0, time.UTC)))
		assert.True(t, oh.IsOpenAt(time.Date(2017, time.January, 3, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("Exception Keys Sorted", func(t *testing.T) {
		oh := Create(Definition{
			"exceptions": map[string]interface{}{
				"2016-12-25": []string{},
				"01-01":      []string{},
			},
		}, WithLocation(time.UTC))
		assert.Equal(t, []string{"01-01", "2016-12-25"}, oh.ExceptionKeys())
	})
}

func TestFilters(t *testing.T) {
	closedDay := OpeningHoursForDay{}
	openDay, err := DayFromStrings([]string{"00:00-24:00"})
	require.NoError(t, err)

	t.Run("First Non Nil Filter Wins", func(t *testing.T) {
		var secondCalled bool
		oh := Create(Definition{
			"monday to sunday": []string{"09:00-17:00"},
			"filters": []Filter{
				func(date time.Time) *OpeningHoursForDay {
					if date.Day() == 13 {
						return &closedDay
					}
					return nil
				},
				func(date time.Time) *OpeningHoursForDay {
					secondCalled = true
					return &openDay
				},
			},
		}, WithLocation(time.UTC))

		day13 := time.Date(2016, time.May, 13, 12, 0, 0, 0, time.UTC)
		assert.True(t, oh.IsClosedAt(day13))
		assert.False(t, secondCalled, "later filters are not consulted once one matched")

		other := time.Date(2016, time.May, 14, 3, 0, 0, 0, time.UTC)
		assert.True(t, oh.IsOpenAt(other), "second filter replaces the whole day")
	})

	t.Run("Filters Run Before Exceptions", func(t *testing.T) {
		oh := Create(Definition{
			"exceptions": map[string]interface{}{
				"2016-12-25": []string{},
			},
			"filters": []Filter{
				func(date time.Time) *OpeningHoursForDay { return &openDay },
			},
		}, WithLocation(time.UTC))

		assert.True(t, oh.IsOpenAt(time.Date(2016, time.December, 25, 12, 0, 0, 0, time.UTC)))
	})
}

func TestIsOpenOn(t *testing.T) {
	oh := weeklySchedule()

	t.Run("Weekday Name Ignores Exceptions", func(t *testing.T) {
		assert.True(t, oh.IsOpenOn("monday"))
		assert.True(t, oh.IsOpenOn("MONDAY"))
		assert.False(t, oh.IsOpenOn("tuesday"))
	})

	t.Run("Date Token Resolves Through Exceptions", func(t *testing.T) {
		assert.False(t, oh.IsOpenOn("2016-12-25"), "exception closes the day")
		assert.True(t, oh.IsOpenOn("2016-12-26"), "a regular monday")
	})

	t.Run("Month Day Token Uses Current Year", func(t *testing.T) {
		clock := func() time.Time { return time.Date(2016, time.December, 20, 0, 0, 0, 0, time.UTC) }
		pinned := weeklySchedule(WithClock(clock))
		assert.False(t, pinned.IsOpenOn("12-25"))
		assert.True(t, pinned.IsOpenOn("12-26"))
	})

	t.Run("Unknown Token Is Closed", func(t *testing.T) {
		assert.False(t, oh.IsOpenOn("blursday"))
		assert.True(t, oh.IsClosedOn("blursday"))
	})
}

func TestIsOpenUsesClock(t *testing.T) {
	openMoment := time.Date(2016, time.December, 26, 11, 0, 0, 0, time.UTC)
	oh := weeklySchedule(WithClock(func() time.Time { return openMoment }))
	assert.True(t, oh.IsOpen())
	assert.False(t, oh.IsClosed())

	closedMoment := time.Date(2016, time.December, 26, 12, 30, 0, 0, time.UTC)
	oh = weeklySchedule(WithClock(func() time.Time { return closedMoment }))
	assert.False(t, oh.IsOpen())
}

func TestIsAlwaysOpenAndClosed(t *testing.T) {
	t.Run("Always Open", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"00:00-24:00"},
		}, WithLocation(time.UTC))
		assert.True(t, oh.IsAlwaysOpen())
		assert.False(t, oh.IsAlwaysClosed())
	})

	t.Run("Always Closed", func(t *testing.T) {
		oh := Create(Definition{}, WithLocation(time.UTC))
		assert.True(t, oh.IsAlwaysClosed())
		assert.False(t, oh.IsAlwaysOpen())
	})

	t.Run("Any Exception Disqualifies Both", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"00:00-24:00"},
			"exceptions": map[string]interface{}{
				"2016-12-25": []string{"00:00-24:00"},
			},
		}, WithLocation(time.UTC))
		assert.False(t, oh.IsAlwaysOpen(), "presence of overrides disqualifies, not their effect")
		assert.False(t, oh.IsAlwaysClosed())
	})

	t.Run("Any Filter Disqualifies Both", func(t *testing.T) {
		oh := Create(Definition{
			"monday to sunday": []string{"00:00-24:00"},
			"filters": []Filter{
				func(date time.Time) *OpeningHoursForDay { return nil },
			},
		}, WithLocation(time.UTC))
		assert.False(t, oh.IsAlwaysOpen())
		assert.False(t, oh.IsAlwaysClosed())
	})
}

func TestForWeekViews(t *testing.T) {
	oh := Create(Definition{
		"monday":    []string{"09:00-17:00"},
		"tuesday":   []string{"09:00-17:00"},
		"wednesday": []string{"10:00-16:00"},
		"friday":    []string{"09:00-17:00"},
	}, WithLocation(time.UTC))

	t.Run("ForWeek", func(t *testing.T) {
		week := oh.ForWeek()
		require.Len(t, week, 7)
		assert.Equal(t, "09:00-17:00", week["monday"].String())
		assert.True(t, week["sunday"].IsEmpty())
	})

	t.Run("Combined Groups Identical Days", func(t *testing.T) {
		groups := oh.ForWeekCombined()
		require.NotEmpty(t, groups)
		assert.Equal(t, []string{"monday", "tuesday", "friday"}, groups[0].Days)
		assert.Equal(t, "09:00-17:00", groups[0].Day.String())
	})

	t.Run("Consecutive Groups Runs Only", func(t *testing.T) {
		groups := oh.ForWeekConsecutiveDays()
		require.Len(t, groups, 5)
		assert.Equal(t, []string{"monday", "tuesday"}, groups[0].Days)
		assert.Equal(t, []string{"wednesday"}, groups[1].Days)
		assert.Equal(t, []string{"thursday"}, groups[2].Days)
		assert.Equal(t, []string{"friday"}, groups[3].Days)
		assert.Equal(t, []string{"saturday", "sunday"}, groups[4].Days)
	})
}

func TestFillRebuildsFromScratch(t *testing.T) {
	oh := weeklySchedule()
	rebuilt := oh.Fill(Definition{
		"tuesday": []string{"10:00-14:00"},
	})

	assert.True(t, rebuilt.IsOpenOn("tuesday"))
	assert.False(t, rebuilt.IsOpenOn("monday"), "fill is a full rebuild, not a merge")
	assert.True(t, oh.IsOpenOn("monday"), "original instance is untouched")
	assert.Empty(t, rebuilt.ExceptionKeys())
}

func TestConstructionOrderIsDeterministic(t *testing.T) {
	t.Run("Single Day Key Overrides A Day Range Key", func(t *testing.T) {
		// Map iteration order must not leak into the result: the narrower
		// key wins no matter how the runtime walks the definition.
		for i := 0; i < 25; i++ {
			oh := Create(Definition{
				"monday to friday": []string{"09:00-17:00"},
				"wednesday":        []string{},
			}, WithLocation(time.UTC))

			assert.True(t, oh.IsOpenOn("monday"))
			assert.False(t, oh.IsOpenOn("wednesday"))
			assert.True(t, oh.IsOpenOn("friday"))
		}
	})

	t.Run("Exact Date Key Overrides An Expanded Date Range", func(t *testing.T) {
		for i := 0; i < 25; i++ {
			oh := Create(Definition{
				"exceptions": map[string]interface{}{
					"2016-12-24 to 2016-12-26": []interface{}{"10:00-12:00"},
					"2016-12-25":               []interface{}{},
				},
			}, WithLocation(time.UTC))

			assert.True(t, oh.IsOpenAt(time.Date(2016, time.December, 24, 11, 0, 0, 0, time.UTC)))
			assert.False(t, oh.IsOpenAt(time.Date(2016, time.December, 25, 11, 0, 0, 0, time.UTC)))
			assert.True(t, oh.IsOpenAt(time.Date(2016, time.December, 26, 11, 0, 0, 0, time.UTC)))
		}
	})
}

func TestEndToEndScenarios(t *testing.T) {
	oh := weeklySchedule()

	assert.True(t, oh.IsOpenAt(time.Date(2016, time.December, 26, 11, 0, 0, 0, time.UTC)), "monday in range")
	assert.False(t, oh.IsOpenAt(time.Date(2016, time.December, 19, 12, 30, 0, 0, time.UTC)), "lunch gap")
	assert.False(t, oh.IsOpenAt(time.Date(2016, time.December, 25, 11, 0, 0, 0, time.UTC)), "exception closes christmas")
	assert.False(t, oh.IsOpenAt(time.Date(2016, time.December, 24, 11, 0, 0, 0, time.UTC)), "saturday closed")
}
