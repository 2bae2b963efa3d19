package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/core"
	"warmsync.app/warmsync/ingest"
	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/web/common"
)

type ReportRequest struct {
	// Omitted fields fall back to the persisted settings.
	SourceURL    string           `json:"sourceUrl" binding:"omitempty,url"`
	EmployeeName string           `json:"employeeName"`
	Month        common.MonthOnly `json:"month"`
	HourlyRate   *float64         `json:"hourlyRate" binding:"omitempty,gte=0"`
}

type ReportResponse struct {
	Report  *model.MonthlyReport `json:"report"`
	Mapping core.ColumnMapping   `json:"mapping"`
}

// NoDataResponse is the diagnostic body for the distinct "valid data, no
// matching rows" outcome: which columns were read, and which employee
// names the sheet actually contains.
type NoDataResponse struct {
	Message       string             `json:"message"`
	Mapping       core.ColumnMapping `json:"mapping"`
	DetectedNames []string           `json:"detectedNames"`
}

type resolvedReport struct {
	report       *model.MonthlyReport
	mapping      core.ColumnMapping
	employeeName string
}

// resolveReport runs the whole pipeline for one request: defaults from
// settings, one fetch, normalize, aggregate. It writes the error or
// no-data response itself and reports ok=false in that case.
func (e *Endpoint) resolveReport(c *gin.Context) (*resolvedReport, bool) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return nil, false
	}
	if req.Month.IsZero() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Field 'month' is required"))
		return nil, false
	}

	settings, err := e.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return nil, false
	}

	sourceURL := req.SourceURL
	if sourceURL == "" {
		sourceURL = settings.SourceURL
	}
	if sourceURL == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("no data source URL configured"))
		return nil, false
	}

	employeeName := req.EmployeeName
	if employeeName == "" {
		employeeName = settings.EmployeeName
	}

	rate := e.Config.DefaultRate
	if settings.HourlyRate > 0 {
		rate = settings.HourlyRate
	}
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	payload, err := e.Client.FetchRows(c.Request.Context(), sourceURL)
	if err != nil {
		// A malformed payload is the source's fault, but distinguishable
		// from plain connectivity trouble.
		status := http.StatusBadGateway
		if errors.Is(err, ingest.ErrBadFormat) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, common.NewErrorResponse(err.Error()))
		return nil, false
	}

	shifts := core.NormalizeRows(payload.Rows)
	report := core.BuildReport(shifts, core.ReportOptions{
		EmployeeName: employeeName,
		Year:         req.Month.Year(),
		Month:        req.Month.Month(),
		HourlyRate:   rate,
		Rounding:     e.Config.RoundingPolicy(),
		EndFallback:  e.Config.Fallback(),
	})
	if report == nil {
		c.JSON(http.StatusNotFound, NoDataResponse{
			Message:       "no shifts matched the employee and month",
			Mapping:       payload.Mapping,
			DetectedNames: core.DetectNames(shifts),
		})
		return nil, false
	}

	return &resolvedReport{
		report:       report,
		mapping:      payload.Mapping,
		employeeName: employeeName,
	}, true
}

func (e *Endpoint) BuildReport(c *gin.Context) {
	res, ok := e.resolveReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ReportResponse{
		Report:  res.report,
		Mapping: res.mapping,
	}))
}
