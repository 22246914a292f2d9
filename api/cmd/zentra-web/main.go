package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/irgordon/zentra/api/internal/api/handlers"
	"github.com/irgordon/zentra/api/internal/api/middleware"
	"github.com/irgordon/zentra/api/internal/api/router"
	"github.com/irgordon/zentra/api/internal/config"
	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/core/services"
	"github.com/irgordon/zentra/api/internal/i18n"
	"github.com/irgordon/zentra/api/internal/telemetry"
	"github.com/irgordon/zentra/api/internal/workers"
)

func main() {
	// --- 1. Core Telemetry & Configuration ---
	cfg := config.Load()
	logger := telemetry.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	logger.Info("Booting Zentra landing service", "env", cfg.Environment)

	// --- 2. Page State & Services ---
	// The status board holds the elements owned by the health poller. Every
	// page view copies them into its own document.
	board := domain.NewDocument(domain.ElemRiskStatus, domain.ElemStressStatus)
	targets, err := workers.BindTargets(config.Endpoints(), board)
	if err != nil {
		logger.Error("FATAL: status board incomplete", "error", err)
		os.Exit(1)
	}

	dict := i18n.Default()
	simulator := services.NewScoreSimulator(nil)
	landing, err := services.NewLandingService(dict, board, simulator)
	if err != nil {
		logger.Error("FATAL: landing service", "error", err)
		os.Exit(1)
	}

	hub := telemetry.NewHub()
	poller := workers.NewHealthPoller(targets, hub, logger, cfg.HealthTimeout, cfg.HealthPollInterval)

	// --- 3. Background Workers ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		poller.Start(workerCtx)
	}()

	// --- 4. HTTP Gateway ---
	pageHandler, err := handlers.NewPageHandler(landing, logger)
	if err != nil {
		logger.Error("FATAL: page handler", "error", err)
		os.Exit(1)
	}

	mux := router.NewRouter(router.RouterConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		PageHandler:      pageHandler,
		StatusHandler:    handlers.NewStatusHandler(poller, hub, logger),
		ScoreHandler:     handlers.NewScoreHandler(simulator, logger),
		LanguageHandler:  handlers.NewLanguageHandler(dict, logger),
		RiskHandler:      handlers.NewRiskHandler(services.NewRiskService(logger), logger),
		APIKeyMiddleware: middleware.NewAPIKeyMiddleware(cfg.RiskAPIKeys, logger),
		RateLimiter:      middleware.NewRateLimiter(workerCtx, rate.Limit(5), 20),
		Logger:           logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- 5. Graceful Exit ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Zentra landing service active", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("CRITICAL: Server crashed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("Shutting down...")
	cancelWorkers() // Stop polling before draining connections
	<-pollerDone
	hub.Close() // End SSE and WebSocket streams so Shutdown can drain

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("ERROR: Forced shutdown", "error", err)
	}
	logger.Info("Zentra landing service stopped")
}
