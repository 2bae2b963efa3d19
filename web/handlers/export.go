package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/export"
	"warmsync.app/warmsync/web/common"
)

// ExportReport streams the report back as an xlsx workbook.
func (e *Endpoint) ExportReport(c *gin.Context) {
	res, ok := e.resolveReport(c)
	if !ok {
		return
	}

	f, err := export.WriteReport(res.report, res.employeeName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("report-%s.xlsx", res.report.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = c.Error(err)
	}
}
