package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RoundingPolicy converts raw elapsed hours into the figure that lands on
// the report. Exactly one policy is active per deployment; the config file
// picks it by name.
type RoundingPolicy func(hours float64) float64

// RoundToHundredth keeps two decimal places.
func RoundToHundredth(h float64) float64 {
	return math.Round(h*100) / 100
}

// RoundToWholeHour rounds to the nearest full hour.
func RoundToWholeHour(h float64) float64 {
	return math.Round(h)
}

// RoundToHalfHourBuckets floors the hour and buckets the spill-over
// minutes: more than 45 adds a full hour, more than 15 adds half.
func RoundToHalfHourBuckets(h float64) float64 {
	whole := math.Floor(h)
	minutes := math.Round((h - whole) * 60)
	switch {
	case minutes > 45:
		return whole + 1
	case minutes > 15:
		return whole + 0.5
	default:
		return whole
	}
}

// RoundingPolicyByName maps a config value to its policy. Unknown names
// fall back to two-decimal rounding.
func RoundingPolicyByName(name string) RoundingPolicy {
	switch name {
	case "whole":
		return RoundToWholeHour
	case "half-buckets":
		return RoundToHalfHourBuckets
	default:
		return RoundToHundredth
	}
}

// ComputeHours returns the worked hours between start and end on the given
// calendar date, net of break minutes. A shift whose end does not follow
// its start is taken to cross midnight. Missing or unparseable values mean
// zero hours, never an error, and the result is never negative.
func ComputeHours(date, startTime, endTime string, breakMinutes int, policy RoundingPolicy) float64 {
	if startTime == "" || endTime == "" || startTime == NoPunch || endTime == NoPunch {
		return 0
	}
	day, err := time.Parse("2006-01-02", NormalizeDate(date))
	if err != nil {
		return 0
	}
	start, ok := timeOnDate(day, startTime)
	if !ok {
		return 0
	}
	end, ok := timeOnDate(day, endTime)
	if !ok {
		return 0
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	hours := end.Sub(start).Hours() - float64(breakMinutes)/60
	if policy == nil {
		policy = RoundToHundredth
	}
	rounded := policy(hours)
	if rounded < 0 {
		return 0
	}
	return rounded
}

// timeOnDate places an "HH:MM" value on the given calendar day. Unlike
// time.Parse it tolerates unpadded components.
func timeOnDate(day time.Time, hhmm string) (time.Time, bool) {
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC), true
}
