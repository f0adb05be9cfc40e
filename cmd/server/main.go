// Package main is the entry point for the sales analytics API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"sales-analytics/internal/cache"
	"sales-analytics/internal/config"
	"sales-analytics/internal/database"
	"sales-analytics/internal/handlers"
	"sales-analytics/internal/middleware"
	"sales-analytics/internal/repositories"
	"sales-analytics/internal/server"
	"sales-analytics/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	})))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Starting sales analytics API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)

	// the service takes a nil interface, not a typed nil, when caching is off
	var totalsCache services.TotalsCacheInterface
	redisClient, err := connectRedis(ctx, &cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, category totals will not be cached", "error", err)
	} else if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		totalsCache = cache.NewGuardedTotalsCache(
			cache.NewRedisTotalsCache(redisClient, cfg.Redis.TotalsTTL),
			cache.NewCircuitBreaker(cache.DefaultCircuitBreakerConfig()),
		)
	}

	salesService := services.NewSalesService(
		repositories.NewSaleRepository(db.DB),
		totalsCache,
		metrics,
		services.NewSaleGenerator(uint64(time.Now().UnixNano()), nil),
		&cfg.Aggregation,
	)

	var authMiddleware echo.MiddlewareFunc
	if cfg.AuthEnabled() {
		authMiddleware = middleware.RequireAuth(services.NewTokenService(&cfg.JWT), metrics)
	} else {
		slog.Warn("JWT_SECRET not set, write endpoints are unauthenticated")
	}

	docsHandler, err := handlers.NewDocsHandler("docs")
	if err != nil {
		slog.Warn("API documentation disabled", "error", err)
	}

	engine := server.NewRouter(
		cfg,
		registry,
		handlers.NewHealthCheckHandler(db, redisClient, cfg.Redis.Enabled),
		handlers.NewSalesHandler(salesService),
		handlers.NewDevHandler(salesService),
		docsHandler,
		authMiddleware,
	).Setup(ctx)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited properly")
	return nil
}

// connectRedis returns a nil client when the cache is disabled
func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return cache.NewRedisClient(ctx, cfg)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
