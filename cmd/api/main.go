package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/config"
	"github.com/nutriscope/backend/internal/api"
	"github.com/nutriscope/backend/internal/router"
	"github.com/nutriscope/backend/internal/server"
	"github.com/nutriscope/backend/internal/service"
)

func main() {
	// Load .env if present; systemd/env files still work without it
	_ = godotenv.Load()

	// Initialize configuration; missing mandatory credentials abort
	// startup entirely
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Outbound collaborators
	weatherService := service.NewWeatherService(cfg, logger)
	foodService := service.NewFoodDataService(cfg, logger)

	var consultService service.IConsultService
	if cfg.HasGemini() {
		gemini, err := service.NewGeminiService(cfg, logger)
		if err != nil {
			logger.Fatal("failed to initialize Gemini service", zap.Error(err))
		}
		consultService = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; consult and chat endpoints will return errors")
	}

	// Handlers and routes
	analyzeHandler := api.NewAnalyzeHandler(weatherService, foodService, logger)
	consultHandler := api.NewConsultHandler(consultService, logger)
	engine := router.SetupRouter(analyzeHandler, consultHandler, logger)

	srv := server.New(cfg, engine, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	// Gracefully shutdown the server
	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	if config.IsProduction() {
		return zap.Must(zap.NewProduction())
	}
	return zap.Must(zap.NewDevelopment())
}
