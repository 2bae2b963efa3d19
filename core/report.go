package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/utils"
)

type ReportOptions struct {
	// EmployeeName filters rows by whitespace- and case-insensitive
	// equality. Empty means every row matches.
	EmployeeName string
	Year         int
	Month        time.Month
	HourlyRate   float64
	Rounding     RoundingPolicy
	EndFallback  EndFallback
}

// MonthLabel is the "yyyy-MM" string the report carries. It is taken from
// the request, never re-derived from the data.
func (o ReportOptions) MonthLabel() string {
	return fmt.Sprintf("%04d-%02d", o.Year, int(o.Month))
}

// BuildReport aggregates the matching rows into a monthly report. It
// returns nil when no daily shift survives the filter; callers respond to
// that with the resolved column mapping and the detected employee names
// rather than a blank failure.
func BuildReport(shifts []model.NormalizedShift, opts ReportOptions) *model.MonthlyReport {
	month := opts.MonthLabel()
	target := CleanForComparison(opts.EmployeeName)

	matched := utils.Filter(shifts, func(s model.NormalizedShift) bool {
		if target != "" && CleanForComparison(s.EmployeeName) != target {
			return false
		}
		return strings.HasPrefix(NormalizeDate(s.Date), month)
	})

	daily := GroupByDate(matched, AggregateOptions{
		Rounding:    opts.Rounding,
		EndFallback: opts.EndFallback,
	})
	if len(daily) == 0 {
		return nil
	}

	var total float64
	for _, d := range daily {
		total += d.TotalHours
	}
	// Two decimals here keeps float drift out of the pay calculation.
	total = math.Round(total*100) / 100

	return &model.MonthlyReport{
		ID:          uuid.NewString(),
		Month:       month,
		TotalHours:  total,
		HourlyRate:  opts.HourlyRate,
		TotalPay:    int64(math.Floor(total * opts.HourlyRate)),
		Shifts:      daily,
		GeneratedAt: time.Now(),
	}
}

// DetectNames lists the distinct employee names observed in the raw data,
// in first-seen order. The dashboard shows them when a filter matched
// nothing so a typo is obvious.
func DetectNames(shifts []model.NormalizedShift) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, s := range shifts {
		n := s.EmployeeName
		if n == "" || n == "undefined" || n == "null" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}
