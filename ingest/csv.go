package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseDelimited reads a delimited text blob into the same payload shape
// the remote endpoint produces. The first record is the header row.
func ParseDelimited(r io.Reader) (*Payload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged exports are common
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited punch data: %w", err)
	}
	return FromGrid(records), nil
}
