package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/handler"
	"github.com/minimart/commerce-system/internal/api/middleware"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// NewSearchRouter builds the search orchestrator's Echo instance. The service
// holds no store of its own.
func NewSearchRouter(search ports.SearchService, verifier ports.TokenVerifier, log zerolog.Logger) *echo.Echo {
	e := newEcho("search", log)

	h := handler.NewSearchHandler(search)
	e.GET("/search", h.Search, middleware.Auth(verifier))

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)

	return e
}
