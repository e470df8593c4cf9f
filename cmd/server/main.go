package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garnizeh/trivia/api"
	dbfs "github.com/garnizeh/trivia/db"
	"github.com/garnizeh/trivia/internal/config"
	"github.com/garnizeh/trivia/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := cfg.Log.NewLogger(os.Stdout)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	slog.SetDefault(logger)

	logger.Info("starting trivia server", slog.String("version", version), slog.String("build_time", buildTime))

	ctx := context.Background()

	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.APITimeout)
	defer dbCancel()

	// Open database connection
	database, err := db.New(dbCtx, cfg.DatabasePath, logger)
	if err != nil {
		logger.Error("failed to open DB", slog.Any("err", err))
		os.Exit(1)
	}

	if cfg.MigrateOnStart {
		var seed fs.FS
		if cfg.SeedOnStart {
			seed = dbfs.SeedFiles
		}
		if err := db.Migrate(dbCtx, database, dbfs.Migrations, seed); err != nil {
			logger.Error("failed to migrate DB", slog.Any("err", err))
			_ = database.Close()
			os.Exit(1)
		}
	}

	handler, err := api.SetupRoutes(version, buildTime, database, logger)
	if err != nil {
		logger.Error("failed to set up routes", slog.Any("err", err))
		_ = database.Close()
		os.Exit(1)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
	}

	// Close database connection
	if err := database.Close(); err != nil {
		logger.Error("error closing DB", slog.Any("err", err))
	}

	logger.Info("server exited")
}
