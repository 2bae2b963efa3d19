package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColumnsLetterConvention(t *testing.T) {
	m := MapColumns([]string{"A", "B", "C", "D", "E"})

	assert.Equal(t, "A", m.Date)
	assert.Equal(t, "B", m.Start)
	assert.Equal(t, "C", m.End)
	assert.Equal(t, "D", m.Name)
	assert.Equal(t, "E", m.Notes)
	assert.Empty(t, m.Break)
}

func TestMapColumnsKeywords(t *testing.T) {
	m := MapColumns([]string{"日期", "上班", "下班", "姓名", "備註"})

	assert.Equal(t, "日期", m.Date)
	assert.Equal(t, "上班", m.Start)
	assert.Equal(t, "下班", m.End)
	assert.Equal(t, "姓名", m.Name)
	assert.Equal(t, "備註", m.Notes)
}

func TestMapColumnsEnglishKeywords(t *testing.T) {
	m := MapColumns([]string{"Timestamp", "Start Time", "End Time", "Employee Name", "Remark", "Break (min)"})

	assert.Equal(t, "Timestamp", m.Date)
	assert.Equal(t, "Start Time", m.Start)
	assert.Equal(t, "End Time", m.End)
	assert.Equal(t, "Employee Name", m.Name)
	assert.Equal(t, "Remark", m.Notes)
	assert.Equal(t, "Break (min)", m.Break)
}

func TestMapColumnsPositionalFallback(t *testing.T) {
	keys := []string{"col1", "col2", "col3", "col4", "col5"}
	m := MapColumns(keys)

	assert.Equal(t, "col1", m.Date)
	assert.Equal(t, "col2", m.Start)
	assert.Equal(t, "col3", m.End)
	assert.Equal(t, "col4", m.Name)
	assert.Equal(t, "col5", m.Notes)
	assert.Empty(t, m.Break, "break has no positional fallback")
}

func TestMapColumnsShortRow(t *testing.T) {
	m := MapColumns([]string{"col1", "col2"})

	assert.Equal(t, "col1", m.Date)
	assert.Equal(t, "col2", m.Start)
	assert.Empty(t, m.End)
	assert.Empty(t, m.Name)
	assert.Empty(t, m.Notes)
}
