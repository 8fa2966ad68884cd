package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// EditProductInput carries an employee's product update. Exactly one of
// NewPrice and NewCategory is applied; price wins when both are present.
type EditProductInput struct {
	Name        string
	NewPrice    *float64
	NewCategory string
}

// CatalogService owns product records and their lookups.
type CatalogService interface {
	// Create errors with domain.ErrProductExists on a duplicate name.
	Create(ctx context.Context, actor string, product domain.Product) error
	Edit(ctx context.Context, actor string, in EditProductInput) error
	// Lookup returns the single product with the given name as a one-element
	// slice, or domain.ErrProductNotFound.
	Lookup(ctx context.Context, name string) ([]domain.Product, error)
	// ByCategory returns every product in the category, or
	// domain.ErrProductNotFound when there are none.
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
