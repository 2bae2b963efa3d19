package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/web/common"
)

type InsightResponse struct {
	Insight string `json:"insight"`
}

// GenerateInsight rebuilds the report for the requested month and asks the
// model for a summary of it.
func (e *Endpoint) GenerateInsight(c *gin.Context) {
	if e.Insight == nil {
		c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse("AI summaries are not configured on this server"))
		return
	}

	res, ok := e.resolveReport(c)
	if !ok {
		return
	}

	text, err := e.Insight.MonthlySummary(c.Request.Context(), res.report)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(InsightResponse{Insight: text}))
}
