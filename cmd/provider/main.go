// Command provider runs a fake upstream travel API for local development.
// It speaks the same endpoints the live provider does, backed by the mock
// fixtures, with configurable latency and failure injection.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

func main() {
	port := getEnv("PORT", "9000")
	latency := getEnvInt("LATENCY_MS", 100)
	failRate := getEnvInt("FAIL_PERCENT", 0)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	upstream := NewUpstream(time.Duration(latency)*time.Millisecond, float64(failRate)/100, logger)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", upstream.TokenHandler)
	mux.HandleFunc("GET /v2/shopping/flight-offers", upstream.FlightsHandler)
	mux.HandleFunc("GET /v3/shopping/hotel-offers", upstream.HotelsHandler)
	mux.HandleFunc("GET /v1/reference-data/locations/pois", upstream.POIHandler)
	mux.HandleFunc("GET /v1/reference-data/locations", upstream.LocationsHandler)
	mux.HandleFunc("GET /v1/duty-of-care/diseases/covid19-area-report", upstream.RestrictionsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write healthz response", "error", err)
		}
	})

	// Configure server
	addr := ":" + port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("fake upstream listening", "addr", addr, "latency_ms", latency, "fail_percent", failRate)
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
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
