package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-form/config"
	_ "go-contact-form/docs" // Important for Swagger
	v1 "go-contact-form/internal/delivery/http/v1"
	"go-contact-form/internal/relay"
	"go-contact-form/internal/usecase"
	"go-contact-form/pkg/logger"
	"go-contact-form/pkg/redis"
)

// @title           Contact Form Service API
// @version         1.0
// @description     Validated contact-form relay in front of a serverless endpoint.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact form service", "port", cfg.Port)

	// 3. Setup Redis (optional, rate limiting only)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Relay Client
	client := relay.NewClient(cfg.SupabaseUrl, cfg.SupabaseKey,
		time.Duration(cfg.SubmitTimeoutSeconds)*time.Second)
	if !client.IsConfigured() {
		logger.Log.Warn("Relay not fully configured - contact form will be unavailable")
	}

	// 5. Setup UseCase
	contactUC := usecase.NewContactUsecase(client)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
