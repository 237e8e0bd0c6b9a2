package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestResolveRange_Day(t *testing.T) {
	rng := ResolveRange(PeriodDay, day("2025-03-12"), time.Time{}, time.Time{})

	assert.Equal(t, "2025-03-12", rng.StartKey())
	assert.Equal(t, "2025-03-12", rng.EndKey())
	assert.Len(t, rng.Days(), 1)
}

func TestResolveRange_Week(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
	}{
		{"Monday anchor", "2025-03-10"},
		{"midweek anchor", "2025-03-12"},
		{"Sunday anchor", "2025-03-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveRange(PeriodWeek, day(tt.anchor), time.Time{}, time.Time{})

			assert.Equal(t, "2025-03-10", rng.StartKey())
			assert.Equal(t, "2025-03-16", rng.EndKey())
			assert.Equal(t, time.Monday, rng.Start.Weekday())
			assert.Equal(t, time.Sunday, rng.End.Weekday())
			assert.Len(t, rng.Days(), 7)
		})
	}
}

func TestResolveRange_WeekAcrossMonthBoundary(t *testing.T) {
	rng := ResolveRange(PeriodWeek, day("2025-04-01"), time.Time{}, time.Time{})

	assert.Equal(t, "2025-03-31", rng.StartKey())
	assert.Equal(t, "2025-04-06", rng.EndKey())
}

func TestResolveRange_Month(t *testing.T) {
	t.Run("31 day month", func(t *testing.T) {
		rng := ResolveRange(PeriodMonth, day("2025-03-15"), time.Time{}, time.Time{})

		assert.Equal(t, "2025-03-01", rng.StartKey())
		assert.Equal(t, "2025-03-31", rng.EndKey())
		assert.Len(t, rng.Days(), 31)
	})

	t.Run("February leap year", func(t *testing.T) {
		rng := ResolveRange(PeriodMonth, day("2024-02-10"), time.Time{}, time.Time{})

		assert.Equal(t, "2024-02-01", rng.StartKey())
		assert.Equal(t, "2024-02-29", rng.EndKey())
		assert.Len(t, rng.Days(), 29)
	})
}

func TestResolveRange_Custom(t *testing.T) {
	t.Run("passes endpoints through", func(t *testing.T) {
		rng := ResolveRange(PeriodCustom, time.Time{}, day("2025-03-03"), day("2025-03-05"))

		assert.Equal(t, "2025-03-03", rng.StartKey())
		assert.Equal(t, "2025-03-05", rng.EndKey())
		assert.Len(t, rng.Days(), 3)
	})

	t.Run("end before start yields no days", func(t *testing.T) {
		rng := ResolveRange(PeriodCustom, time.Time{}, day("2025-03-05"), day("2025-03-03"))

		assert.Empty(t, rng.Days())
	})
}

func TestResolveRange_UnknownPeriodDefaultsToDay(t *testing.T) {
	rng := ResolveRange(PeriodType("bogus"), day("2025-03-12"), time.Time{}, time.Time{})

	assert.Equal(t, "2025-03-12", rng.StartKey())
	assert.Equal(t, "2025-03-12", rng.EndKey())
}

func TestPeriodType_IsValid(t *testing.T) {
	assert.True(t, PeriodDay.IsValid())
	assert.True(t, PeriodWeek.IsValid())
	assert.True(t, PeriodMonth.IsValid())
	assert.True(t, PeriodCustom.IsValid())
	assert.False(t, PeriodType("year").IsValid())
}
