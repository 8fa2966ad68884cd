// Package main is the entry point for the identity service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minimart/commerce-system/internal/api"
	"github.com/minimart/commerce-system/internal/core/secret"
	"github.com/minimart/commerce-system/internal/core/service"
	"github.com/minimart/commerce-system/internal/infrastructure/client"
	mongodb "github.com/minimart/commerce-system/internal/infrastructure/db/mongo"
	"github.com/minimart/commerce-system/internal/pkg/config"
	"github.com/minimart/commerce-system/pkg/logger"
)

const defaultPort = "9000"

func main() {
	cfg := config.Load(defaultPort)
	log := logger.Init(logger.Options{Service: "identity", Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	secrets, err := secret.Load(cfg.SecretFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SecretFile).Msg("failed to load signing key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "identity"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	auditClient := client.NewAuditClient(cfg.Services.AuditURL, cfg.Services.ClientTimeout)
	identitySvc := service.NewIdentityService(userRepo, secrets, auditClient, log)

	e := api.NewIdentityRouter(identitySvc, db, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("identity service started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
