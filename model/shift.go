package model

import "time"

// RawPunchRow is one observed clock event exactly as the data source
// delivered it, after column mapping but before any normalization. Every
// field is free text; absent cells arrive as empty strings.
type RawPunchRow struct {
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes string `json:"breakMinutes"`
	Notes        string `json:"notes"`
}

// NormalizedShift is a punch row after boundary validation: the date is an
// ISO calendar string (or empty when unparseable) and break minutes are a
// non-negative integer. The time-of-day fields keep their observed spelling;
// they are canonicalized when the day is resolved, because the aggregator
// orders same-day punches by the raw start value.
type NormalizedShift struct {
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes int    `json:"breakMinutes"`
	Notes        string `json:"notes"`
}

// DailyShift is the consolidated one-row-per-day record for one employee.
type DailyShift struct {
	EmployeeName string  `json:"employeeName,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	BreakMinutes int     `json:"breakMinutes"`
	TotalHours   float64 `json:"totalHours"`
	Notes        string  `json:"notes"`
}

// MonthlyReport is the terminal artifact: one employee, one calendar month,
// derived pay. Built fresh on every recompute and never mutated in place.
type MonthlyReport struct {
	ID          string       `json:"id"`
	Month       string       `json:"month"` // yyyy-MM
	TotalHours  float64      `json:"totalHours"`
	HourlyRate  float64      `json:"hourlyRate"`
	TotalPay    int64        `json:"totalPay"`
	Shifts      []DailyShift `json:"shifts"`
	GeneratedAt time.Time    `json:"generatedAt"`
}
