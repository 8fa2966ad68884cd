package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

type orderLineRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type orderRequest struct {
	Order []orderLineRequest `json:"order" validate:"required,min=1,dive"`
}

type orderResponse struct {
	Status domain.Status `json:"status"`
	Cost   *float64      `json:"cost,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// OrderHandler exposes order pricing. Sits behind Auth.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Price prices an order and records the event.
//
// @Summary      Price an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orderRequest  true  "Order lines"
// @Success      200   {object}  orderResponse
// @Failure      401   {object}  orderResponse
// @Failure      422   {object}  orderResponse
// @Router       /order [post]
func (h *OrderHandler) Price(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, orderResponse{Status: domain.StatusRejected, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, orderResponse{Status: domain.StatusRejected, Error: err.Error()})
	}

	lines := make([]domain.OrderLine, 0, len(req.Order))
	for _, l := range req.Order {
		lines = append(lines, domain.OrderLine{Product: l.Product, Quantity: l.Quantity})
	}

	result, err := h.service.Price(c.Request().Context(), username, lines)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) || errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusUnprocessableEntity, orderResponse{Status: domain.StatusRejected, Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, orderResponse{Status: domain.StatusOK, Cost: &result.Total})
}
