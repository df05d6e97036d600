package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackhub/internal/catalog"
	"trackhub/internal/config"
	"trackhub/internal/database"
	"trackhub/internal/handler"
	"trackhub/internal/repository"
	"trackhub/internal/router"
	"trackhub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting trackhub API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the catalogue source: database, S3 with local fallback,
	// or the local file system.
	fileSource := catalog.NewFileSource(cfg.Catalog.Path, logger)
	var source catalog.Source

	switch {
	case cfg.Database.Enabled:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		source = repository.NewCatalogSource(pool, logger)

	case cfg.S3.Enabled:
		s3Source, err := catalog.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 source, falling back to local file system")
			source = fileSource
		} else {
			source = s3Source
		}

	default:
		source = fileSource
		logger.Info().Msg("using local file system for the catalogue (S3 and database disabled)")
	}

	// Load the catalogue once; it is immutable for the process
	// lifetime and injected into every service that needs it.
	table, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	logger.Info().Int("products", table.Len()).Msg("catalogue loaded")

	// Initialize services
	catalogService := service.NewCatalogService(table, logger)
	analyticsService := service.NewAnalyticsService(table, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	dashboardHandler := handler.NewDashboardHandler(analyticsService, logger)

	// Initialize router
	mux := router.New(catalogHandler, dashboardHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
