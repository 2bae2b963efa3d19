package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"warmsync.app/warmsync/ai/insight"
	"warmsync.app/warmsync/config"
	"warmsync.app/warmsync/ingest"
	"warmsync.app/warmsync/store"
	"warmsync.app/warmsync/web/handlers"
	"warmsync.app/warmsync/web/middlewares"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	endpoint := &handlers.Endpoint{
		Config: cfg,
		Store:  db,
		Client: ingest.NewClient(cfg.SourceToken),
	}
	if cfg.GeminiAPIKey != "" {
		endpoint.Insight = insight.NewGenerator(context.Background(), cfg.GeminiAPIKey)
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	if cfg.SigningSecret != "" {
		secret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
		if err != nil {
			log.Fatalf("decode signing secret: %v", err)
		}
		api.Use(middlewares.Authentication(secret))
	}
	handlers.Register(api, endpoint)

	if cfg.StaticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	r.Run(cfg.Listen)
}
