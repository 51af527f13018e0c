package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/visualgenius/server/internal/adapter/imagesearch"
	"github.com/visualgenius/server/internal/adapter/llm"
	"github.com/visualgenius/server/internal/config"
	"github.com/visualgenius/server/internal/logger"
	store "github.com/visualgenius/server/internal/repository"
	"github.com/visualgenius/server/internal/service"
	v1 "github.com/visualgenius/server/internal/transport/http/v1"
	"github.com/visualgenius/server/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Configure(cfg.LogLevel, cfg.Dev)
	log := logger.Logger

	log.Info().Int("http_port", cfg.HTTPPort).Str("database", cfg.DatabaseURL).
		Str("llm_url", cfg.LLMBaseURL).Msg("starting server")

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()

	// Initialize idea generator
	ideas := llm.NewIdeaGenerator(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	// Initialize image search
	images := imagesearch.NewClient(cfg.UnsplashAccessKey, cfg.ImageSearchTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize policy engine")
	}

	// Initialize service
	svc := service.New(db, ideas, images, policyEngine)

	// Initialize handler
	h := v1.NewHandler(svc)

	// Create Echo server
	server := echo.New()
	server.HideBanner = true

	// Middleware
	server.Use(middleware.Logger())
	server.Use(middleware.Recover())
	server.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(server)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	log.Info().Int("port", cfg.HTTPPort).Msg("API started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server gracefully")
	}

	log.Info().Msg("server stopped")
}
