package api

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/commerce-system/internal/api/handler"
	"github.com/minimart/commerce-system/internal/api/middleware"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// NewAuditRouter builds the audit service's Echo instance. Record and
// last-modifier lookups serve the other services without a gate; the
// user-facing log view requires a session.
func NewAuditRouter(audit ports.AuditService, verifier ports.TokenVerifier, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("audit", log)

	h := handler.NewAuditHandler(audit)
	e.POST("/log", h.Record)
	e.GET("/last_mod", h.LastMod)
	e.GET("/view_log", h.ViewLog, middleware.Auth(verifier))

	healthHandler := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readiness.Readiness)

	return e
}
