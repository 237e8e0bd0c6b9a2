package services

import (
	"time"
	"washboard/internal/utils"
)

type PeriodType string

const (
	PeriodDay    PeriodType = "day"
	PeriodWeek   PeriodType = "week"
	PeriodMonth  PeriodType = "month"
	PeriodCustom PeriodType = "custom"
)

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodCustom:
		return true
	}
	return false
}

// DateRange is an inclusive [Start, End] span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days lists every calendar day in the range. End before Start yields an
// empty sequence rather than an error, downstream stages simply process
// nothing.
func (r DateRange) Days() []time.Time {
	return utils.DaysBetween(r.Start, r.End)
}

func (r DateRange) StartKey() string { return utils.DayKey(r.Start) }
func (r DateRange) EndKey() string   { return utils.DayKey(r.End) }

// ResolveRange turns a period selector plus an anchor date into a concrete
// inclusive range. Weeks start on Monday. Custom ranges pass through without
// derivation.
func ResolveRange(period PeriodType, anchor time.Time, customStart, customEnd time.Time) DateRange {
	switch period {
	case PeriodWeek:
		return DateRange{Start: utils.StartOfWeek(anchor), End: utils.EndOfWeek(anchor)}
	case PeriodMonth:
		return DateRange{Start: utils.StartOfMonth(anchor), End: utils.EndOfMonth(anchor)}
	case PeriodCustom:
		return DateRange{Start: utils.Day(customStart), End: utils.Day(customEnd)}
	default:
		day := utils.Day(anchor)
		return DateRange{Start: day, End: day}
	}
}
