package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"time"

	"warmsync.app/warmsync/config"
	"warmsync.app/warmsync/web/middlewares"
)

func main() {
	subject := flag.String("subject", "cli", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SigningSecret == "" {
		log.Fatal("no signing secret configured")
	}
	secret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatalf("decode signing secret: %v", err)
	}

	token, err := middlewares.CreateJWT(*subject, *ttl, secret)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
