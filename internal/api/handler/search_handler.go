package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

type searchResponse struct {
	Status domain.Status         `json:"status"`
	Data   []domain.SearchResult `json:"data,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// SearchHandler exposes enriched product search. Sits behind Auth; no
// employee requirement on either query path.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search resolves products by name or category and enriches each with its
// last modifier.
//
// @Summary      Search products
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        product_name  query     string  false  "Product name"
// @Param        category      query     string  false  "Category"
// @Success      200  {object}  searchResponse
// @Failure      401  {object}  searchResponse
// @Failure      404  {object}  searchResponse
// @Failure      422  {object}  searchResponse
// @Router       /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	results, err := h.service.Search(c.Request().Context(), username, ports.SearchQuery{
		ProductName: c.QueryParam("product_name"),
		Category:    c.QueryParam("category"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuery):
			return c.JSON(http.StatusUnprocessableEntity, searchResponse{Status: domain.StatusRejected, Error: "product_name or category is required"})
		case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNoHistory):
			return c.JSON(http.StatusNotFound, searchResponse{Status: domain.StatusRejected, Error: "not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{Status: domain.StatusOK, Data: results})
}
