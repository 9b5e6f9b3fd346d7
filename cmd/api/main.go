package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio API
// @version         1.0
// @description     Content and contact form backend for a personal portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Message Sender (logs only; no provider is wired)
	sender := email.NewLogSender(logger.Log)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, cfg.ContactEmailTo)
	portfolioUC := usecase.NewPortfolioUsecase(usecase.DefaultPortfolio())
	healthUC := usecase.NewHealthUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
