package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

type recordEventRequest struct {
	Event       string `json:"event" validate:"required"`
	Username    string `json:"user"  validate:"required"`
	ProductName string `json:"name"`
}

type lastModResponse struct {
	Status  domain.Status `json:"status"`
	LastMod string        `json:"last_mod,omitempty"`
}

type logEntriesResponse struct {
	Status domain.Status     `json:"status"`
	Data   []domain.LogEntry `json:"data,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// AuditHandler exposes event recording and history queries. Record and
// LastMod serve the other services and carry no gate; ViewLog is a
// user-facing route behind Auth.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Record appends an event to the audit log.
//
// @Summary      Record an event
// @Tags         audit
// @Accept       json
// @Produce      json
// @Param        body  body      recordEventRequest  true  "Event"
// @Success      200   {object}  statusResponse
// @Failure      422   {object}  statusResponse
// @Router       /log [post]
func (h *AuditHandler) Record(c echo.Context) error {
	var req recordEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusRejected, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusRejected, Error: err.Error()})
	}

	err := h.service.Record(c.Request().Context(), domain.LogEntry{
		Event:       req.Event,
		Username:    req.Username,
		ProductName: req.ProductName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: domain.StatusOK})
}

// LastMod returns the username that most recently touched a product.
//
// @Summary      Last modifier of a product
// @Tags         audit
// @Produce      json
// @Param        product_name  query     string  true  "Product name"
// @Success      200  {object}  lastModResponse
// @Failure      404  {object}  lastModResponse
// @Router       /last_mod [get]
func (h *AuditHandler) LastMod(c echo.Context) error {
	productName := c.QueryParam("product_name")

	lastMod, err := h.service.LastModifier(c.Request().Context(), productName)
	if err != nil {
		if errors.Is(err, domain.ErrNoHistory) {
			return c.JSON(http.StatusNotFound, lastModResponse{Status: domain.StatusAuthFailed})
		}
		return err
	}

	return c.JSON(http.StatusOK, lastModResponse{Status: domain.StatusOK, LastMod: lastMod})
}

// ViewLog returns log entries for a username (self only) or a product
// (employees only).
//
// @Summary      View log entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  false  "Username (callers may only view their own)"
// @Param        product   query     string  false  "Product name (employee only)"
// @Success      200  {object}  logEntriesResponse
// @Failure      401  {object}  logEntriesResponse
// @Failure      403  {object}  logEntriesResponse
// @Failure      422  {object}  logEntriesResponse
// @Router       /view_log [get]
func (h *AuditHandler) ViewLog(c echo.Context) error {
	caller, employee, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	username := c.QueryParam("username")
	product := c.QueryParam("product")

	var entries []domain.LogEntry
	switch {
	case username != "":
		entries, err = h.service.ViewByUser(c.Request().Context(), caller, username)
	case product != "":
		entries, err = h.service.ViewByProduct(c.Request().Context(), employee, product)
	default:
		return c.JSON(http.StatusUnprocessableEntity, logEntriesResponse{Status: domain.StatusRejected, Error: "username or product is required"})
	}
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, logEntriesResponse{Status: domain.StatusRejected, Error: "access forbidden"})
		}
		return err
	}

	return c.JSON(http.StatusOK, logEntriesResponse{Status: domain.StatusOK, Data: entries})
}
