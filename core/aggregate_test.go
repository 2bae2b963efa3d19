package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warmsync.app/warmsync/model"
)

func day(date, start, end string, breakMin int, notes string) model.NormalizedShift {
	return model.NormalizedShift{
		EmployeeName: "alex lu",
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: breakMin,
		Notes:        notes,
	}
}

func TestGroupByDateMergesSameDay(t *testing.T) {
	shifts := []model.NormalizedShift{
		day("2024-03-05", "09:00", "", 15, "morning run"),
		day("2024-03-05", "13:00", "18:00", 30, "afternoon"),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	got := daily[0]
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Equal(t, "09:00", got.StartTime)
	// The second row carries a real punch-out, so no fallback fires.
	assert.Equal(t, "18:00", got.EndTime)
	assert.Equal(t, 45, got.BreakMinutes)
	assert.Equal(t, "morning run; afternoon", got.Notes)
	assert.InDelta(t, 8.25, got.TotalHours, 0.001) // 9h minus 45m
}

func TestGroupByDateBorrowsLastStartAsClockOut(t *testing.T) {
	// Clock-in-only twice a day: the later punch-in becomes the clock-out.
	shifts := []model.NormalizedShift{
		day("2024-03-05", "09:00", "", 0, ""),
		day("2024-03-05", "17:30", "", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	assert.Equal(t, "09:00", daily[0].StartTime)
	assert.Equal(t, "17:30", daily[0].EndTime)
	assert.InDelta(t, 8.5, daily[0].TotalHours, 0.001)
}

func TestGroupByDateFallbackDisabled(t *testing.T) {
	shifts := []model.NormalizedShift{
		day("2024-03-05", "09:00", "", 0, ""),
		day("2024-03-05", "17:30", "", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{
		Rounding:    RoundToHundredth,
		EndFallback: NoEndFallback,
	})

	assert.Len(t, daily, 1)
	assert.Equal(t, NoPunch, daily[0].EndTime)
	assert.Zero(t, daily[0].TotalHours)
}

func TestGroupByDateCombinedEndValue(t *testing.T) {
	// A punch-out hiding behind a "date time" combo still resolves.
	shifts := []model.NormalizedShift{
		day("2024-03-05", "09:00", "2024-03-05 17:00", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	assert.Equal(t, "17:00", daily[0].EndTime)
}

func TestGroupByDateDropsUnparseableDates(t *testing.T) {
	shifts := []model.NormalizedShift{
		day("", "09:00", "17:00", 0, ""),
		day("undefined", "09:00", "17:00", 0, ""),
		day("2024-03-06", "09:00", "17:00", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	assert.Equal(t, "2024-03-06", daily[0].Date)
}

func TestGroupByDateKeepsDayWithoutPunches(t *testing.T) {
	shifts := []model.NormalizedShift{
		day("2024-03-05", "", "", 0, "forgot the clock"),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	assert.Equal(t, NoPunch, daily[0].StartTime)
	assert.Equal(t, NoPunch, daily[0].EndTime)
	assert.Zero(t, daily[0].TotalHours)
	assert.Equal(t, "forgot the clock", daily[0].Notes)
}

func TestGroupByDateSortsAscending(t *testing.T) {
	shifts := []model.NormalizedShift{
		day("2024-03-07", "09:00", "17:00", 0, ""),
		day("2024-03-05", "09:00", "17:00", 0, ""),
		day("2024-03-06", "09:00", "17:00", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 3)
	assert.Equal(t, "2024-03-05", daily[0].Date)
	assert.Equal(t, "2024-03-06", daily[1].Date)
	assert.Equal(t, "2024-03-07", daily[2].Date)
}

func TestGroupByDateNormalizesVariantSpellings(t *testing.T) {
	// Two spellings of one calendar day still land in one shift.
	shifts := []model.NormalizedShift{
		day("2024/3/5", "09:00", "", 0, ""),
		day("3-5-2024", "13:00", "18:00", 0, ""),
	}

	daily := GroupByDate(shifts, AggregateOptions{Rounding: RoundToHundredth})

	assert.Len(t, daily, 1)
	assert.Equal(t, "2024-03-05", daily[0].Date)
}
