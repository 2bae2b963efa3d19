package core

import (
	"strings"

	"warmsync.app/warmsync/utils"
)

// ColumnMapping records which physical column feeds each logical role. It
// travels with the aggregation output so the dashboard can show which
// columns were used when a filter matches nothing.
type ColumnMapping struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
	Break string `json:"break,omitempty"`
	Notes string `json:"notes"`
}

// Keyword lists are matched against whitespace-stripped, lowercased keys,
// so every entry here must already be lowercase.
var (
	nameKeywords  = []string{"員工姓名", "姓名", "員工", "name"}
	dateKeywords  = []string{"日期", "date", "timestamp", "day"}
	startKeywords = []string{"上班", "starttime", "start"}
	endKeywords   = []string{"下班", "endtime", "end"}
	notesKeywords = []string{"備註", "notes", "remark"}
	breakKeywords = []string{"休息", "break"}
)

// MapColumns resolves the five roles from the first data row's keys. Per
// role: an exact spreadsheet-letter key wins (A=date B=start C=end D=name
// E=notes), then a keyword substring match, then position. Break minutes
// are keyword-only; no match means no break column.
func MapColumns(keys []string) ColumnMapping {
	m := ColumnMapping{
		Date:  resolveKey(keys, "A", dateKeywords, 0),
		Start: resolveKey(keys, "B", startKeywords, 1),
		End:   resolveKey(keys, "C", endKeywords, 2),
		Name:  resolveKey(keys, "D", nameKeywords, 3),
		Notes: resolveKey(keys, "E", notesKeywords, 4),
	}
	for _, k := range keys {
		// The name column often contains the break keywords' characters in
		// CJK exports, so it is excluded from the scan.
		if k == m.Name {
			continue
		}
		if matchesKeyword(k, breakKeywords) {
			m.Break = k
			break
		}
	}
	return m
}

func resolveKey(keys []string, letter string, keywords []string, fallback int) string {
	if k := utils.Find(keys, func(k string) bool { return k == letter }); k != nil {
		return *k
	}
	if k := utils.Find(keys, func(k string) bool { return matchesKeyword(k, keywords) }); k != nil {
		return *k
	}
	if fallback < len(keys) {
		return keys[fallback]
	}
	return ""
}

func matchesKeyword(key string, keywords []string) bool {
	clean := CleanForComparison(key)
	for _, kw := range keywords {
		if strings.Contains(clean, kw) {
			return true
		}
	}
	return false
}
