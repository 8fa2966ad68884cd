package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/handler"
	"github.com/minimart/commerce-system/internal/api/middleware"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// NewOrdersRouter builds the order orchestrator's Echo instance. The service
// holds no store of its own.
func NewOrdersRouter(orders ports.OrderService, verifier ports.TokenVerifier, log zerolog.Logger) *echo.Echo {
	e := newEcho("orders", log)

	h := handler.NewOrderHandler(orders)
	e.POST("/order", h.Price, middleware.Auth(verifier))

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)

	return e
}
