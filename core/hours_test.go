package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		end      string
		breakMin int
		expected float64
	}{
		{"plain day shift", "2024-03-05", "09:00", "18:00", 60, 8},
		{"overnight rolls end forward", "2024-03-05", "22:00", "06:00", 0, 8},
		{"end equals start reads as full day", "2024-03-05", "09:00", "09:00", 0, 24},
		{"break exceeds shift clamps to zero", "2024-03-05", "09:00", "10:00", 120, 0},
		{"missing start", "2024-03-05", "", "18:00", 0, 0},
		{"missing end", "2024-03-05", "09:00", "", 0, 0},
		{"no punch sentinel", "2024-03-05", NoPunch, "18:00", 0, 0},
		{"bad date", "not-a-date", "09:00", "18:00", 0, 0},
		{"bad time", "2024-03-05", "nine", "18:00", 0, 0},
		{"fractional hours", "2024-03-05", "09:00", "17:20", 0, 8.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.date, tt.start, tt.end, tt.breakMin, RoundToHundredth)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestComputeHoursNeverNegative(t *testing.T) {
	policies := []RoundingPolicy{RoundToHundredth, RoundToWholeHour, RoundToHalfHourBuckets}
	for _, p := range policies {
		got := ComputeHours("2024-03-05", "09:00", "09:30", 600, p)
		assert.GreaterOrEqual(t, got, 0.0)
	}
}

func TestComputeHoursMonotonic(t *testing.T) {
	// Longer net elapsed time never yields fewer hours.
	short := ComputeHours("2024-03-05", "09:00", "12:00", 0, RoundToHundredth)
	long := ComputeHours("2024-03-05", "09:00", "17:00", 0, RoundToHundredth)
	assert.LessOrEqual(t, short, long)

	withBreak := ComputeHours("2024-03-05", "09:00", "17:00", 30, RoundToHundredth)
	assert.LessOrEqual(t, withBreak, long)
}

func TestRoundingPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   RoundingPolicy
		in       float64
		expected float64
	}{
		{"hundredth", RoundToHundredth, 8.3333, 8.33},
		{"whole rounds up at half", RoundToWholeHour, 8.5, 9},
		{"whole rounds down", RoundToWholeHour, 8.4, 8},
		{"buckets keep floor at 10m", RoundToHalfHourBuckets, 8 + 10.0/60, 8},
		{"buckets add half at 20m", RoundToHalfHourBuckets, 8 + 20.0/60, 8.5},
		{"buckets add hour at 50m", RoundToHalfHourBuckets, 8 + 50.0/60, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.policy(tt.in), 0.001)
		})
	}
}

func TestRoundingPolicyByName(t *testing.T) {
	assert.InDelta(t, 9.0, RoundingPolicyByName("whole")(8.6), 0.001)
	assert.InDelta(t, 8.5, RoundingPolicyByName("half-buckets")(8.4), 0.001)
	assert.InDelta(t, 8.6, RoundingPolicyByName("hundredth")(8.6), 0.001)
	assert.InDelta(t, 8.6, RoundingPolicyByName("")(8.6), 0.001)
}
