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

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"uniadmin-backend/config"
	"uniadmin-backend/internal/api"
	"uniadmin-backend/internal/catalog"
	"uniadmin-backend/internal/db"
	"uniadmin-backend/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	if err := config.SetupLogger(cfg.Log); err != nil {
		log.Fatalf("failed to configure logger: %v", err)
	}
	log.Infof("configuration loaded from %s", configPath)

	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.WithField("driver", cfg.Database.Driver).Info("database initialized")

	catalogRepo, err := loadCatalog(cfg.Catalog)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	for _, problem := range catalog.DanglingReferences(catalogRepo) {
		log.Warnf("catalog: %s", problem)
	}

	appStore := store.NewGormStore(gormDB)
	handler := api.NewHandler(catalog.NewService(catalogRepo), appStore)

	// Initialize router
	router := api.NewRouter(handler, api.Options{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		CacheTTL:        cfg.Server.CacheTTL,
		CORSOrigins:     cfg.Server.CORSOrigins,
	})
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		log.Infof("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	log.Info("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server Shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("server gracefully stopped")
}

// loadCatalog reads the configured fixture, falling back to the built-in seed.
func loadCatalog(cfg config.CatalogConfig) (catalog.Repository, error) {
	if cfg.FixturePath == "" {
		log.Info("using built-in catalog seed")
		return catalog.SeedRepository(), nil
	}
	repo, err := catalog.LoadFixture(cfg.FixturePath)
	if err != nil {
		return nil, err
	}
	log.WithField("path", cfg.FixturePath).Info("catalog fixture loaded")
	return repo, nil
}
