// Package main is the entry point for the order service.
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
	"github.com/minimart/commerce-system/internal/pkg/config"
	"github.com/minimart/commerce-system/pkg/logger"
)

const defaultPort = "9003"

func main() {
	cfg := config.Load(defaultPort)
	log := logger.Init(logger.Options{Service: "orders", Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier := client.NewIdentityClient(cfg.Services.IdentityURL, cfg.Services.ClientTimeout)
	catalogClient := client.NewCatalogClient(cfg.Services.CatalogURL, cfg.Services.ClientTimeout)
	auditClient := client.NewAuditClient(cfg.Services.AuditURL, cfg.Services.ClientTimeout)
	orderSvc := service.NewOrderService(catalogClient, auditClient, log)

	e := api.NewOrdersRouter(orderSvc, verifier, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("order service started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
