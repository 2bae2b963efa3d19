package core

import (
	"sort"
	"strings"

	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/utils"
)

// EndFallback names the strategy used when a day has punch-ins but no
// usable punch-out.
type EndFallback string

const (
	// BorrowNextStart treats the day's later punch-in as the implicit
	// clock-out. Covers the common "clock in twice a day" entry habit.
	BorrowNextStart EndFallback = "borrow-next-start"
	// NoEndFallback leaves the day open; it is reported with zero hours.
	NoEndFallback EndFallback = "none"
)

// EndFallbackByName maps a config value to its strategy. Unknown names
// keep the borrowing behavior.
func EndFallbackByName(name string) EndFallback {
	if name == string(NoEndFallback) {
		return NoEndFallback
	}
	return BorrowNextStart
}

type AggregateOptions struct {
	Rounding    RoundingPolicy
	EndFallback EndFallback
}

// GroupByDate merges every punch row sharing a calendar date into one
// DailyShift, ascending by date. Rows whose date cannot be normalized are
// dropped; once a date normalizes, its day always appears, even when both
// clock values are missing.
func GroupByDate(shifts []model.NormalizedShift, opts AggregateOptions) []model.DailyShift {
	if opts.EndFallback == "" {
		opts.EndFallback = BorrowNextStart
	}

	usable := utils.Filter(shifts, func(s model.NormalizedShift) bool {
		return NormalizeDate(s.Date) != ""
	})
	groups := utils.GroupBy(usable, func(s model.NormalizedShift) string {
		return NormalizeDate(s.Date)
	})

	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	// Lexical order is chronological for yyyy-MM-dd.
	sort.Strings(dates)

	daily := make([]model.DailyShift, 0, len(dates))
	for _, date := range dates {
		daily = append(daily, resolveDay(date, groups[date], opts))
	}
	return daily
}

func resolveDay(date string, rows []model.NormalizedShift, opts AggregateOptions) model.DailyShift {
	sorted := make([]model.NormalizedShift, len(rows))
	copy(sorted, rows)
	// Raw start values sort lexically; this decides which punch is "first".
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	var start, end string
	totalBreak := 0
	for _, r := range sorted {
		if s := NormalizeTime(r.StartTime); start == "" && s != "" {
			start = s
		}
		if e := NormalizeTime(r.EndTime); end == "" && e != "" && e != NoPunch {
			end = e
		}
		totalBreak += r.BreakMinutes
	}

	// No end anywhere: retry the first row's own raw end value, then, if
	// allowed, borrow the latest punch-in as the implicit clock-out.
	if end == "" && len(sorted) > 0 {
		if raw := sorted[0].EndTime; raw != "" && raw != NoPunch {
			end = NormalizeTime(raw)
		}
	}
	if end == "" && opts.EndFallback == BorrowNextStart && len(sorted) > 1 {
		end = NormalizeTime(sorted[len(sorted)-1].StartTime)
	}

	hours := ComputeHours(date, start, end, totalBreak, opts.Rounding)

	var notes []string
	for _, r := range rows {
		if n := strings.TrimSpace(r.Notes); n != "" {
			notes = append(notes, n)
		}
	}

	ds := model.DailyShift{
		EmployeeName: rows[0].EmployeeName,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: totalBreak,
		TotalHours:   hours,
		Notes:        strings.Join(notes, "; "),
	}
	if ds.StartTime == "" {
		ds.StartTime = NoPunch
	}
	if ds.EndTime == "" {
		ds.EndTime = NoPunch
	}
	return ds
}
