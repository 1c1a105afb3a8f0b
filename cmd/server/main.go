package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api"
	mongodb "github.com/tamiresatyajayanth58/JOB-PORTAL/internal/infrastructure/db/mongo"
	redisdb "github.com/tamiresatyajayanth58/JOB-PORTAL/internal/infrastructure/db/redis"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/pkg/config"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "job-portal",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// Redis only backs rate limiting and the readiness probe; the limiter
		// fails open, so start without it rather than refuse to serve.
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg, log)
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// ensureIndexes creates the unique and query indexes every repository relies
// on. The unique ones are load-bearing: they arbitrate duplicate races.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewApplicationRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewSavedJobRepository(db).EnsureIndexes(ctx)
}
