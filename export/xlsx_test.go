package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"warmsync.app/warmsync/model"
)

func TestSaveReport(t *testing.T) {
	report := &model.MonthlyReport{
		Month:      "2024-03",
		TotalHours: 16.5,
		HourlyRate: 196,
		TotalPay:   3234,
		Shifts: []model.DailyShift{
			{Date: "2024-03-05", StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60, TotalHours: 8, Notes: "inventory"},
			{Date: "2024-03-06", StartTime: "09:00", EndTime: "18:00", BreakMinutes: 30, TotalHours: 8.5},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, SaveReport(report, "alex lu", path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Report", "B2")
	require.NoError(t, err)
	assert.Equal(t, "lu alex", name, "display name is surname first")

	month, err := f.GetCellValue("Report", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", month)

	firstDate, err := f.GetCellValue("Report", "A9")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", firstDate)
}
