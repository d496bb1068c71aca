package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelfinder/app"
	"reelfinder/httpserver"
	"reelfinder/pkg/config"
	"reelfinder/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"golang.org/x/sync/errgroup"
)

// @title ReelFinder API
// @version 1.0
// @description Movie and TV series search over the OMDb catalog.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}
	logger := config.SetupLogger(cfg.LogLevel, os.Stdout)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		sentrygo.Flush(sentry.FlushTime)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := app.NewCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}
	defer catalog.Close()

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.MovieService = catalog
	server.Logger = logger

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started!", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
