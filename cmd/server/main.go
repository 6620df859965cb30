// server is the backing API for the embeddable comment widget.
//
// It reads configuration from the environment, connects to MongoDB
// (sites, comments) and Redis (admin sessions), bootstraps indexes, and
// serves the JSON API until SIGINT or SIGTERM.
//
// @title        Comment Widget API
// @version      1.0
// @description  Backing API for the embeddable comment widget: admin auth, site registry, comment admission, and self-service provisioning.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commentbox/comment-system/internal/api"
	"github.com/commentbox/comment-system/internal/infrastructure/config"
	mongostore "github.com/commentbox/comment-system/internal/infrastructure/db/mongo"
	redisstore "github.com/commentbox/comment-system/internal/infrastructure/db/redis"
	"github.com/commentbox/comment-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.AdminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}
	if cfg.Turnstile.SecretKey == "" {
		log.Fatal().Msg("TURNSTILE_SECRET_KEY must be set")
	}

	// Root context cancelled on SIGINT or SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	commentRepo := mongostore.NewCommentRepository(db)
	if err := commentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("index bootstrap failed")
	}

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
