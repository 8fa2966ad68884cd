package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// CatalogHandler exposes product creation, editing, and lookups. The write
// routes sit behind Auth plus RequireEmployee; lookups are unauthenticated.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Failure      422   {object}  statusResponse
// @Router       /products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusAuthFailed, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusAuthFailed, Error: err.Error()})
	}

	err = h.service.Create(c.Request().Context(), username, domain.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductExists) {
			return c.JSON(http.StatusConflict, statusResponse{Status: domain.StatusAuthFailed, Error: "product already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{Status: domain.StatusOK})
}

// Edit updates a product's price or category.
//
// @Summary      Edit a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editProductRequest  true  "Product update"
// @Success      200   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      422   {object}  statusResponse
// @Router       /products/edit [post]
func (h *CatalogHandler) Edit(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req editProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusRejected, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Status: domain.StatusRejected, Error: err.Error()})
	}

	err = h.service.Edit(c.Request().Context(), username, ports.EditProductInput{
		Name:        req.Name,
		NewPrice:    req.NewPrice,
		NewCategory: req.NewCategory,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: domain.StatusOK})
}

// Lookup resolves a single product by name or all products in a category.
//
// @Summary      Look up products
// @Tags         catalog
// @Produce      json
// @Param        product_name  query     string  false  "Product name"
// @Param        category      query     string  false  "Category"
// @Success      200  {object}  productsResponse
// @Failure      400  {object}  productsResponse
// @Failure      404  {object}  productsResponse
// @Router       /products [get]
func (h *CatalogHandler) Lookup(c echo.Context) error {
	name := c.QueryParam("product_name")
	category := c.QueryParam("category")

	var (
		products []domain.Product
		err      error
	)
	switch {
	case name != "":
		products, err = h.service.Lookup(c.Request().Context(), name)
	case category != "":
		products, err = h.service.ByCategory(c.Request().Context(), category)
	default:
		return c.JSON(http.StatusBadRequest, productsResponse{Status: domain.StatusAuthFailed, Error: "product_name or category is required"})
	}
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, productsResponse{Status: domain.StatusAuthFailed, Error: "not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, productsResponse{Status: domain.StatusOK, Products: products})
}

// List returns the whole catalog.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  productsResponse
// @Router       /products/all [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Status: domain.StatusOK, Products: products})
}
