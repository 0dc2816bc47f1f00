package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/onnwee/meteodaten/backend/internal/api"
	"github.com/onnwee/meteodaten/backend/internal/config"
	"github.com/onnwee/meteodaten/backend/internal/errorreporting"
	"github.com/onnwee/meteodaten/backend/internal/logger"
	"github.com/onnwee/meteodaten/backend/internal/meteodata"
	"github.com/onnwee/meteodaten/backend/internal/metrics"
	"github.com/onnwee/meteodaten/backend/internal/secrets"
	"github.com/onnwee/meteodaten/backend/internal/server"
	"github.com/onnwee/meteodaten/backend/internal/tracing"
)

func main() {
	if err := run(); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		logger.Debug("No .env file found, using process environment")
	}

	if err := errorreporting.Init(errorreporting.Options{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     cfg.SentryRelease,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		logger.Error("Sentry init failed, continuing without error reporting", "error", err)
	} else if errorreporting.IsSentryEnabled() {
		logger.Info("Sentry error reporting enabled", "dsn", secrets.MaskURL(cfg.SentryDSN))
		defer errorreporting.Flush(2 * time.Second)
	}

	shutdownTracing, err := tracing.Init(tracing.Options{
		Enabled:     cfg.OTELEnabled,
		ServiceName: "meteodaten-api",
		Version:     cfg.ServiceVersion,
		Endpoint:    cfg.OTELEndpoint,
		SampleRate:  cfg.OTELSampleRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := meteodata.NewFileSource(cfg.DataFile)

	collector := metrics.NewCollector(source.Path(), cfg.FileStatsInterval)
	go collector.Start(ctx)
	defer collector.Stop()

	router := api.NewRouter(cfg, source)
	defer router.Close()

	logger.Info("Starting meteodaten API",
		"addr", cfg.HTTPAddr,
		"data_file", source.Path(),
		"strict_error_status", cfg.StrictErrorStatus,
		"docs", cfg.EnableDocs,
		"rate_limit", cfg.EnableRateLimit,
		"env", cfg.Env,
	)
	if !cfg.StrictErrorStatus {
		logger.Warn("Legacy error status enabled: data errors are answered with 200")
	}

	if err := server.New(cfg, router).Run(ctx); err != nil {
		errorreporting.CaptureError(err)
		return err
	}
	return nil
}
