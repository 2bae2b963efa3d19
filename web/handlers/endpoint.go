package handlers

import (
	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/ai/insight"
	"warmsync.app/warmsync/config"
	"warmsync.app/warmsync/ingest"
	"warmsync.app/warmsync/store"
)

type Endpoint struct {
	Config  *config.Config
	Store   *store.Store
	Client  *ingest.Client
	Insight *insight.Generator // nil when no API key is configured
}

func Register(r *gin.RouterGroup, e *Endpoint) {
	r.POST("/report", e.BuildReport)
	r.POST("/report/export", e.ExportReport)
	r.POST("/insight", e.GenerateInsight)
	r.GET("/settings", e.GetSettings)
	r.PUT("/settings", e.SaveSettings)
}
