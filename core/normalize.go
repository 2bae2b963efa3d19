package core

import (
	"strconv"
	"strings"
	"unicode"

	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/utils"
)

// NoPunch is the placeholder carried on a daily record when no usable
// clock value exists for that side of the day.
const NoPunch = "未打卡"

// CleanForComparison strips every whitespace rune (unicode.IsSpace covers
// the full-width U+3000 the sheet exports contain) and lowercases. The
// result is an equality key, never a display value.
func CleanForComparison(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeTime canonicalizes a raw time-like token to zero-padded "HH:MM".
// "00:00", placeholder strings and anything without two colon-separated
// components all mean "no punch" and come back empty. A combined
// "date time" value keeps only the trailing clock segment.
func NormalizeTime(s string) string {
	if s == "" || s == "00:00" || s == "undefined" || s == "null" {
		return ""
	}
	t := strings.TrimSpace(s)
	if strings.Contains(t, " ") {
		fields := strings.Fields(t)
		if last := fields[len(fields)-1]; strings.Contains(last, ":") {
			t = last
		}
	}
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return ""
	}
	return padTwo(parts[0]) + ":" + padTwo(parts[1])
}

// NormalizeDate canonicalizes '/'- or '-'-separated dates to "YYYY-MM-DD",
// discarding any time suffix. A leading 4-digit component reads as Y-M-D; a
// trailing one reads as M-D-Y and is re-emitted year first. Placeholder
// input yields an empty string.
func NormalizeDate(s string) string {
	if s == "" || s == "undefined" || s == "null" {
		return ""
	}
	d := strings.TrimSpace(s)
	if i := strings.IndexByte(d, ' '); i >= 0 {
		d = d[:i]
	}
	if i := strings.IndexByte(d, 'T'); i >= 0 {
		d = d[:i]
	}
	clean := strings.ReplaceAll(d, "/", "-")
	parts := strings.Split(clean, "-")
	if len(parts) == 3 {
		if len(parts[0]) == 4 {
			return parts[0] + "-" + padTwo(parts[1]) + "-" + padTwo(parts[2])
		}
		if len(parts[2]) == 4 {
			// Ambiguous locale input reads as M-D-Y, matching the sheet
			// exports this tool was built against.
			return parts[2] + "-" + padTwo(parts[0]) + "-" + padTwo(parts[1])
		}
	}
	return clean
}

// FormatName flips a two-token name into surname-first order for display.
// Western given+family names keep a space between the swapped tokens; CJK
// names are joined directly. Anything else passes through unchanged.
func FormatName(name string) string {
	tokens := strings.Fields(strings.TrimSpace(name))
	if len(tokens) != 2 {
		return name
	}
	if isASCIILetters(tokens[0]) && isASCIILetters(tokens[1]) {
		return tokens[1] + " " + tokens[0]
	}
	return tokens[1] + tokens[0]
}

// NormalizeRows validates raw punch rows into the strict internal shape:
// trimmed names, ISO dates and integer break minutes. Time-of-day values
// keep their observed spelling for the aggregator's ordering rules.
func NormalizeRows(rows []model.RawPunchRow) []model.NormalizedShift {
	return utils.Map(rows, func(r model.RawPunchRow) model.NormalizedShift {
		return model.NormalizedShift{
			EmployeeName: strings.TrimSpace(r.EmployeeName),
			Date:         NormalizeDate(r.Date),
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			BreakMinutes: softMinutes(r.BreakMinutes),
			Notes:        r.Notes,
		}
	})
}

// softMinutes coerces a free-text minute count, taking the leading digit
// run so values like "30 min" still count. Non-numeric input is zero.
func softMinutes(s string) int {
	t := strings.TrimSpace(s)
	end := 0
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(t[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func padTwo(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

func isASCIILetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
