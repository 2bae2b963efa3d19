package ingest

import (
	"strings"
	"testing"
)

func TestParseDelimited(t *testing.T) {
	csvData := `date,start,end,name,notes
2024-03-05,09:00,18:00,alex lu,inventory
2024-03-06,09:00,17:30,alex lu,
`

	payload, err := ParseDelimited(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseDelimited returned error: %v", err)
	}

	if len(payload.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload.Rows))
	}

	first := payload.Rows[0]
	if first.Date != "2024-03-05" || first.StartTime != "09:00" || first.EmployeeName != "alex lu" || first.Notes != "inventory" {
		t.Errorf("unexpected first row: %+v", first)
	}

	if payload.Mapping.Date != "date" || payload.Mapping.Name != "name" {
		t.Errorf("unexpected mapping: %+v", payload.Mapping)
	}
}

func TestParseDelimitedRaggedRows(t *testing.T) {
	csvData := `date,start,end,name,notes
2024-03-05,09:00
`

	payload, err := ParseDelimited(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseDelimited returned error: %v", err)
	}

	if len(payload.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(payload.Rows))
	}
	if payload.Rows[0].EndTime != "" {
		t.Errorf("expected empty end time, got %q", payload.Rows[0].EndTime)
	}
}
