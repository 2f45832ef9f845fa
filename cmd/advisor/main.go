package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/config"
	"github.com/finsight/biz-advisor-go/internal/handler"
	"github.com/finsight/biz-advisor-go/internal/infra/cache"
	"github.com/finsight/biz-advisor-go/internal/infra/observability"
	"github.com/finsight/biz-advisor-go/internal/infra/quickbooks"
	"github.com/finsight/biz-advisor-go/internal/infra/resilience"
	"github.com/finsight/biz-advisor-go/internal/service"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = godotenv.Load()

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("quickbooks_env", cfg.QuickBooksEnv),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("overview_ttl", cfg.OverviewTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Bool("redis_configured", cfg.RedisURL != ""),
		zap.Bool("jwt_enabled", cfg.JWTSecret != ""),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "biz-advisor")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	store := cache.NewStore(cfg.RedisURL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("quickbooks")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	tokens := quickbooks.NewStaticTokenSource(cfg.QuickBooksToken)
	qbClient := quickbooks.NewClient(httpClient, cfg.QuickBooksBaseURL, tokens, cb, resilienceCfg, logger)

	// --- Services ---
	overviewSvc := service.NewOverview(qbClient, store, metrics, logger, nil, cfg.OverviewTTL, cfg.CompanyTTL)
	assetsSvc := service.NewAssets(metrics, logger, nil)

	// --- Router ---
	router := handler.NewRouter(overviewSvc, assetsSvc, metrics, logger, handler.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
