package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"obra_api/pkg/api"
	"obra_api/pkg/clients/openai"
	"obra_api/pkg/config"
	"obra_api/pkg/logging"
	"obra_api/pkg/metrics"
	appmw "obra_api/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config failed: %v", err)
	}

	logging.Setup(cfg.LogLevel)

	registry := metrics.NewRegistry()

	server := echo.New()
	server.HideBanner = true
	server.Use(middleware.Recover())
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	server.Use(appmw.RequestLogger(registry))

	client, err := openai.NewFromConfig(cfg, registry)
	if err != nil {
		log.Fatalf("openai client init failed: %v", err)
	}

	handlers := api.NewHandlers(client, client, cfg.OpenAI.ChatTemperature, cfg.OpenAI.VisionTemperature)
	handlers.Register(server)
	server.GET("/metrics", registry.EchoHandlerText)
	server.GET("/metrics.json", registry.EchoHandlerJSON)

	if err := server.Start(cfg.Address); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
