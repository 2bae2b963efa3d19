package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"warmsync.app/warmsync/core"
	"warmsync.app/warmsync/model"
)

const sheetName = "Report"

// WriteReport renders the printable monthly report as a workbook, laid out
// like the paper form: header block, per-day table, totals row and the
// signature lines at the bottom.
func WriteReport(report *model.MonthlyReport, employeeName string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	rows := [][]any{
		{"工作月報表 Monthly Attendance & Salary Report"},
		{"員工姓名", core.FormatName(employeeName)},
		{"結算月份", report.Month},
		{"當月總工時", report.TotalHours},
		{"核定時薪", report.HourlyRate},
		{"應付實發工資", report.TotalPay},
		{},
		{"日期", "上班打卡", "下班打卡", "休息(分)", "當日工時", "工作備註"},
	}
	for _, s := range report.Shifts {
		rows = append(rows, []any{s.Date, s.StartTime, s.EndTime, s.BreakMinutes, s.TotalHours, s.Notes})
	}
	rows = append(rows,
		[]any{"月總計", "", "", "", report.TotalHours, ""},
		[]any{},
		[]any{"員工簽名", "", "", "主管審核簽章", "", ""},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write report row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "F", "F", 40); err != nil {
		return nil, err
	}

	return f, nil
}

// SaveReport writes the workbook to disk.
func SaveReport(report *model.MonthlyReport, employeeName, path string) error {
	f, err := WriteReport(report, employeeName)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report workbook: %w", err)
	}
	return nil
}
