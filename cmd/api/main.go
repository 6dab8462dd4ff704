// Package main implements the staffgrid API server: server-side
// pagination, sorting, and filtering for a data-grid UI over an in-memory
// employee dataset.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/staffgrid/staffgrid/engine/store"
	"github.com/staffgrid/staffgrid/pkg/metrics"
	"github.com/staffgrid/staffgrid/pkg/mid"
	"github.com/staffgrid/staffgrid/pkg/resilience"
)

const serviceName = "staffgrid-api"

// Config holds all environment-based configuration.
type Config struct {
	Port        string
	CORSOrigin  string
	DatasetFile string
	RateRPS     float64
	RateBurst   int
}

func loadConfig() Config {
	return Config{
		Port:        envOr("PORT", "8080"),
		CORSOrigin:  envOr("CORS_ORIGIN", "*"),
		DatasetFile: envOr("DATASET_FILE", ""),
		RateRPS:     envFloat("RATE_RPS", 50),
		RateBurst:   envInt("RATE_BURST", 100),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.FromFile(cfg.DatasetFile)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded", "rows", st.Len(), "file", cfg.DatasetFile)

	reg := metrics.New()
	limiter := resilience.NewLimiter(resilience.LimiterOpts{Rate: cfg.RateRPS, Burst: cfg.RateBurst})

	handler := mid.Chain(newRouter(st, reg, logger),
		mid.Recover(logger),
		mid.RequestID(),
		mid.Logger(logger),
		mid.RateLimit(limiter, reg.Counter("staffgrid_rate_limited_total", "Requests rejected by the rate limiter.")),
		mid.CORS(cfg.CORSOrigin),
		mid.OTel(serviceName),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
