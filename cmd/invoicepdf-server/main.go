package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/config"
	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/logger"
	"github.com/gompdf/invoicepdf/internal/server"
	"github.com/gompdf/invoicepdf/pkg/api"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	var reporter format.ErrorReporter = format.NewLogReporter(log)
	if cfg.SentryDSN != "" {
		sr, err := format.NewSentryReporter(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
		})
		if err != nil {
			log.Fatal("failed to set up error reporting", zap.Error(err))
		}
		defer sr.Flush(2 * time.Second)
		reporter = sr
	}

	w, h, ok := api.PageSizeByName(cfg.PageSize)
	if !ok {
		log.Fatal("unknown page size", zap.String("page_size", cfg.PageSize))
	}
	opts := api.DefaultOptions()
	opts.Logger = log
	opts.Reporter = reporter
	opts.PageWidth, opts.PageHeight = w, h
	if cfg.Landscape {
		opts.PageOrientation = api.PageOrientationLandscape
	}
	opts.MarginTop, opts.MarginRight, opts.MarginBottom, opts.MarginLeft = cfg.MarginTop, cfg.MarginRight, cfg.MarginBottom, cfg.MarginLeft
	opts.AttributionURL = cfg.AttributionURL
	opts.FontFamily = cfg.FontFamily
	if cfg.FontDir != "" {
		opts.FontDirectories = append(opts.FontDirectories, cfg.FontDir)
	}

	router := server.New(server.NewHandler(api.NewWithOptions(opts)), log, server.RouterConfig{
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  2 * cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
