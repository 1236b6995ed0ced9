// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/langdir"
	"github.com/olegiv/langdir/internal/config"
	"github.com/olegiv/langdir/internal/handler"
	"github.com/olegiv/langdir/internal/logging"
	"github.com/olegiv/langdir/internal/page"
	"github.com/olegiv/langdir/internal/version"
	"github.com/olegiv/langdir/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "langdir - language-driven page direction demo\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_DEFAULT_LANG     Language assumed when none is declared (default: en)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_RTL_STYLESHEET   Stylesheet id enabled for RTL layout (default: rtl-style)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_LTR_STYLESHEET   Stylesheet id enabled for LTR layout (default: main-style)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_EXTRA_RTL_CODES  Extra RTL primary subtags, comma-separated\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGDIR_LOG_LEVEL        Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/langdir\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("langdir %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	memHandler := logging.NewMemoryHandler(textHandler, logging.DefaultCapacity)
	logger := slog.New(memHandler)
	slog.SetDefault(logger)

	// Build the in-memory document the demo page is rendered from. The
	// LTR stylesheet starts enabled, the RTL one disabled; the watcher's
	// cold start corrects both if the default language is RTL.
	doc := page.NewMemDoc()
	doc.RegisterStylesheet(cfg.LTRStylesheet, false)
	doc.RegisterStylesheet(cfg.RTLStylesheet, true)

	ctrl := langdir.New(doc,
		langdir.WithLogger(logger),
		langdir.WithDefaultLanguage(cfg.DefaultLanguage),
		langdir.WithStylesheets(cfg.RTLStylesheet, cfg.LTRStylesheet),
		langdir.WithExtraRTLCodes(cfg.ExtraRTLCodes...),
	)
	ctrl.Start()
	slog.Info("layout controller started", "default_lang", cfg.DefaultLanguage)

	// Frontend handler
	frontend, err := handler.NewFrontendHandler(doc, ctrl, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating frontend handler: %w", err)
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	logs := handler.NewLogsHandler(memHandler)

	r.Get("/", frontend.Home)
	r.Get("/language", frontend.SwitchLanguage)
	r.Post("/refresh", frontend.Refresh)
	r.Get("/healthz", frontend.Health)
	r.Get("/logz", logs.Recent)

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("mounting static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
