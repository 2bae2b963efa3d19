package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/model"
	"warmsync.app/warmsync/web/common"
)

type SettingsRequest struct {
	EmployeeName string  `json:"employeeName"`
	HourlyRate   float64 `json:"hourlyRate" binding:"gte=0"`
	SourceURL    string  `json:"sourceUrl" binding:"omitempty,url"`
}

func (e *Endpoint) GetSettings(c *gin.Context) {
	settings, err := e.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings))
}

func (e *Endpoint) SaveSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	settings := model.Settings{
		EmployeeName: req.EmployeeName,
		HourlyRate:   req.HourlyRate,
		SourceURL:    req.SourceURL,
	}
	if err := e.Store.Save(settings); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings))
}
