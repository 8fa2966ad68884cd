package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/commerce-system/internal/api/handler"
	"github.com/minimart/commerce-system/internal/api/middleware"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// NewCatalogRouter builds the catalog service's Echo instance. Writes sit
// behind the full gate; lookups are open.
func NewCatalogRouter(catalog ports.CatalogService, verifier ports.TokenVerifier, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := newEcho("catalog", log)

	auth := middleware.Auth(verifier)
	employee := middleware.RequireEmployee()

	h := handler.NewCatalogHandler(catalog)
	e.POST("/products", h.Create, auth, employee)
	e.POST("/products/edit", h.Edit, auth, employee)
	e.GET("/products", h.Lookup)
	e.GET("/products/all", h.List)

	healthHandler := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(db, nil)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readiness.Readiness)

	return e
}
