// Package main is the entry point for the newspaper API server.
// It loads configuration, connects to PostgreSQL, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patrika/internal/auth"
	"patrika/internal/config"
	"patrika/internal/database"
	"patrika/internal/handlers"
	"patrika/internal/media"
	"patrika/internal/middleware"
	"patrika/internal/models"
	"patrika/internal/router"
	"patrika/internal/store"
)

// Login attempts allowed per client IP per window.
const (
	loginLimit  = 10
	loginWindow = time.Minute
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the first admin account in development (no-op once one exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Shared infrastructure: disk media store and token manager.
	mediaStore := media.NewStore(cfg.UploadDir)
	tokens := auth.NewManager(cfg.JWTSecret)

	// One CRUD handler group per content resource, all sharing the same
	// generic implementation.
	var resources []*handlers.Resource
	for _, res := range models.Resources() {
		resources = append(resources, handlers.NewResource(store.NewArticleStore(db, res), mediaStore))
	}

	adminHandlers := handlers.NewAdmin(store.NewUserStore(db), tokens)

	loginLimiter := middleware.NewRateLimiter(loginLimit, loginWindow)
	defer loginLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(resources, adminHandlers, tokens, loginLimiter, cfg.CORSOrigin, cfg.UploadDir)

	// WriteTimeout must accommodate large media uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
