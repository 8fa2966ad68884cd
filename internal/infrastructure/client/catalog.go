package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// CatalogClient implements ports.CatalogClient against the catalog service.
type CatalogClient struct {
	httpClient
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{httpClient: newHTTPClient(baseURL, timeout)}
}

type productsReply struct {
	Status   domain.Status    `json:"status"`
	Products []domain.Product `json:"products"`
}

func (c *CatalogClient) ProductByName(ctx context.Context, name string) (domain.Product, error) {
	products, err := c.lookup(ctx, "product_name", name)
	if err != nil {
		return domain.Product{}, err
	}
	return products[0], nil
}

func (c *CatalogClient) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return c.lookup(ctx, "category", category)
}

func (c *CatalogClient) lookup(ctx context.Context, param, value string) ([]domain.Product, error) {
	var reply productsReply
	code, err := c.getJSON(ctx, "/products?"+param+"="+url.QueryEscape(value), &reply)
	if err != nil {
		return nil, err
	}

	switch {
	case code == http.StatusOK && len(reply.Products) > 0:
		return reply.Products, nil
	case code == http.StatusNotFound || code == http.StatusOK:
		return nil, domain.ErrProductNotFound
	default:
		return nil, fmt.Errorf("lookup %s=%q: unexpected status %d", param, value, code)
	}
}
