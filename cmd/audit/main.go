// Package main is the entry point for the audit service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minimart/commerce-system/internal/api"
	"github.com/minimart/commerce-system/internal/core/service"
	"github.com/minimart/commerce-system/internal/infrastructure/client"
	mongodb "github.com/minimart/commerce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/minimart/commerce-system/internal/infrastructure/db/redis"
	"github.com/minimart/commerce-system/internal/pkg/config"
	"github.com/minimart/commerce-system/pkg/logger"
)

const defaultPort = "9004"

func main() {
	cfg := config.Load(defaultPort)
	log := logger.Init(logger.Options{Service: "audit", Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "audit"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, ClientName: "audit"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	logRepo := mongodb.NewLogRepository(db)
	if err := logRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create log indexes")
	}

	cache := redisdb.NewLastModCache(rdb)
	verifier := client.NewIdentityClient(cfg.Services.IdentityURL, cfg.Services.ClientTimeout)
	auditSvc := service.NewAuditService(logRepo, cache, log)

	e := api.NewAuditRouter(auditSvc, verifier, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("audit service started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
