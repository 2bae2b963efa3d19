package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads one sheet of a local workbook into the common payload
// shape. An empty sheet name means the first sheet.
func ReadWorkbook(path, sheet string) (*Payload, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return FromGrid(rows), nil
}
