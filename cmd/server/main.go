package main

import (
	"context"
	"os"
	"time"

	"formgate/internal/config"
	"formgate/internal/db"
	"formgate/internal/logging"
	"formgate/internal/repository"
	"formgate/internal/server"
	"formgate/internal/tasks"
	"formgate/internal/telemetry"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	// Load configuration (reads .env files first)
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Initialize tracing (no-op unless an OTLP endpoint is configured)
	shutdownTracing, err := telemetry.Setup(context.Background(), "formgate", cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Failed to shut down tracing: %v", err)
		}
	}()

	// Initialize database connection
	entClient, err := db.Initialize()
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer entClient.Close()

	// Create database wrapper
	database := db.NewDatabase(entClient)

	// Start contact retention cleanup when configured
	if cfg.ContactRetentionDays > 0 {
		cleanup := tasks.NewContactCleanup(repository.NewContactRepository(entClient), cfg.ContactRetentionDays)
		cleanup.Start(context.Background())
		logger.Info("Started contact cleanup task (retention %d days)", cfg.ContactRetentionDays)
	}

	// Create and start server
	srv := server.NewServer(database, cfg)

	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
