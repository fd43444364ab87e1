package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"financial-coach/internal/config"
	"financial-coach/internal/database"
	"financial-coach/internal/handlers"
	"financial-coach/internal/llm"
	"financial-coach/internal/middleware"
	"financial-coach/internal/repositories"
	"financial-coach/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close audit store", "error", err)
		}
	}()

	completer, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	if !completer.IsConfigured() {
		logger.Warn("LLM_API_KEY not set, coaching text will use deterministic fallbacks")
	}

	metrics := services.NewPrometheusMetrics()
	narrator := services.NewNarratorService(
		completer,
		services.NewCircuitBreaker(services.CircuitBreakerConfigFrom(cfg.CircuitBreaker)),
		repositories.NewCollaboratorCallRepository(db.DB),
		metrics,
		services.NewCollaboratorLogger(logger),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("16M"))
	e.Use(middleware.RateLimiter(ctx, cfg.Security))

	handlers.RegisterRoutes(e, &handlers.Handlers{
		Health: handlers.NewHealthCheckHandler(db),
		Analytics: handlers.NewAnalyticsHandler(
			services.NewTransactionNormalizer(),
			services.NewSpendAnalysisService(),
			metrics,
		),
		Simulation: handlers.NewSimulationHandler(
			services.NewCashflowSimulator(),
			services.NewCreditSimulator(),
			services.NewInsuranceAdvisor(),
			metrics,
		),
		Narrative: handlers.NewNarrativeHandler(narrator, metrics),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting financial coach API",
			"address", cfg.Address(),
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
			"llm_model", completer.Model(),
		)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
