package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstack/catalog-api/internal/api"
	"github.com/bookstack/catalog-api/internal/infrastructure/db/mongo"
	"github.com/bookstack/catalog-api/internal/pkg/config"
	"github.com/bookstack/catalog-api/pkg/logger"

	_ "github.com/bookstack/catalog-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title        Library Catalog API
// @version      1.0
// @description  REST API for a library catalog with JWT-protected write operations.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongo.NewBookRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create book indexes")
	}

	e := api.NewRouter(db, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
