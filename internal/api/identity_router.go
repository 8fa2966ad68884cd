package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/commerce-system/internal/api/handler"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// NewIdentityRouter builds the identity service's Echo instance.
func NewIdentityRouter(identity ports.IdentityService, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := newEcho("identity", log)

	h := handler.NewIdentityHandler(identity)
	e.POST("/users", h.Register)
	e.GET("/users", h.List)
	e.POST("/login", h.Login)
	e.GET("/verify", h.Verify)

	healthHandler := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(db, nil)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readiness.Readiness)

	return e
}
