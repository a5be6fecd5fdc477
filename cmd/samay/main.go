// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/samay-barta/internal/ai"
	"github.com/olegiv/samay-barta/internal/config"
	"github.com/olegiv/samay-barta/internal/handler/api"
	"github.com/olegiv/samay-barta/internal/repo"
	"github.com/olegiv/samay-barta/internal/session"
	"github.com/olegiv/samay-barta/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: samay [flags]\n\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_MONGODB_URI      MongoDB connection string (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_SERVER_HOST      Server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_LOG_LEVEL        Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_OPENAI_API_KEY   OpenAI API key for summarization (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAMAY_DO_SEED          Seed starter articles at startup (default: false)\n")
	}
	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("samay %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
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

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize the MongoDB connection manager. Connections are
	// established lazily; probe once here so a bad URI fails loudly at
	// startup instead of on the first request.
	manager := store.NewManager(cfg.MongoURI, logger)
	slog.Info("connecting to MongoDB", "uri", store.MaskURI(cfg.MongoURI))

	ctx := context.Background()
	probeCtx, cancelProbe := context.WithTimeout(ctx, 15*time.Second)
	_, err = manager.Acquire(probeCtx)
	cancelProbe()
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	slog.Info("database ready", "db", store.DatabaseNameFromURI(cfg.MongoURI))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := manager.Close(closeCtx); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	sessions := session.ContextProvider{}

	// Seed starter content when requested
	if cfg.DoSeed {
		articles := repo.NewArticles(manager, sessions, logger)
		if err := articles.EnsureSeeded(ctx); err != nil {
			return fmt.Errorf("seeding articles: %w", err)
		}
	}

	summarizer := ai.NewSummarizer(cfg.OpenAIAPIKey)
	if cfg.OpenAIAPIKey == "" {
		slog.Info("summarization disabled, no API key configured")
	}

	apiHandler := api.NewHandler(manager, sessions, summarizer, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Mount("/api/v1", apiHandler.Routes())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
