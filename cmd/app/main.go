package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "eaglegym/docs"
	"eaglegym/internal/booking"
	"eaglegym/internal/cache"
	"eaglegym/internal/config"
	"eaglegym/internal/content"
	"eaglegym/internal/db"
	"eaglegym/internal/gym"
	"eaglegym/internal/logger"
	"eaglegym/internal/selection"
	"eaglegym/internal/server"
	"eaglegym/internal/session"
)

// @title Eagle Gym API
// @version 1.0
// @description Branch content for the Eagle Gym chain: offers, coaches, classes, PT packages and promotions.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting Eagle Gym content service")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if cfg.RunMigrations {
		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if ok, err := db.BranchExists(ctx, database, cfg.DefaultGym, cfg.DefaultBranch); err != nil {
		logger.Warn("Could not verify default branch", "error", err)
	} else if !ok {
		logger.Warn("Default branch is not in the store", "gym", cfg.DefaultGym, "branch", cfg.DefaultBranch)
	}

	store := cache.New(cache.Connect(cfg.RedisAddr), "eaglegym")
	defer store.Close()
	if store.Enabled() {
		logger.Info("Redis cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL.String())
	}

	gyms := gym.NewService(gym.NewRepository(database))
	rows := content.NewCachedRepository(content.NewRepository(database), store, cfg.CacheTTL)
	media := content.NewMediaResolver(cfg.StorageURL, cfg.MediaBucket)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, func() (*selection.State, content.Service) {
		reader := content.NewService(rows, gyms, media)
		return selection.New(gyms, reader, cfg.DefaultGym, cfg.DefaultBranch), reader
	})
	go sessions.Run(ctx, time.Minute)

	srv := server.New(cfg, server.Dependencies{
		Gyms:     gyms,
		Sessions: sessions,
		Booking:  booking.NewService(booking.NewLinker(cfg.BookingURL, cfg.MembershipPhone, cfg.TrainingPhone)),
		Store:    database,
		Cache:    store,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
