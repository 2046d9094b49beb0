package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/config"
	"github.com/jashwanth-cse/Dream-Destiny/internal/handler"
	"github.com/jashwanth-cse/Dream-Destiny/internal/middleware"
	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/resolve"
	"github.com/jashwanth-cse/Dream-Destiny/internal/token"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/cache"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/ratelimit"
)

// Run initializes and runs the application.
func Run() error {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(getEnv("CONFIG_FILE", "config.yml"))
	if err != nil {
		return err
	}
	if !cfg.Amadeus.Configured() {
		logger.Warn("no provider credentials configured, serving mock data")
	}

	// Initialize metrics
	metrics := obs.NewMetrics()

	// Initialize token manager and provider client
	tokens := token.NewManager(
		cfg.Amadeus.IdentityURL,
		cfg.Amadeus.APIKey,
		cfg.Amadeus.APISecret,
		cfg.Amadeus.Timeout(),
		metrics,
		logger,
	)
	mock := provider.NewMock()
	client := provider.NewClient(cfg.Amadeus.BaseURL, tokens, mock, cfg.Amadeus.Timeout(), metrics, logger)

	// Initialize resolver and aggregator
	resolver := resolve.NewResolver(client, logger)
	aggregator := travel.NewAggregator(
		client,
		mock,
		resolver,
		cfg.Amadeus.Timeout(),
		metrics,
		logger,
	)

	// Initialize cache
	bundleCache := cache.NewCache(cfg.Cache.TTL())
	defer bundleCache.Close()

	// Initialize rate limiter
	limiter := ratelimit.NewLimiter(cfg.RateLimit.PerMinute)
	defer limiter.Close()

	// Initialize handler
	h := handler.New(aggregator, bundleCache, limiter, metrics, logger)

	// Setup routes with logging middleware
	mux := http.NewServeMux()
	mux.Handle("GET /travel-data", h)
	mux.HandleFunc("GET /healthz", obs.HealthHandler(logger))
	mux.Handle("GET /metrics", metrics.Handler())

	// Wrap with middleware
	wrappedHandler := middleware.Logging(logger, mux)

	// Configure server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      wrappedHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
