package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// ProductRepository defines catalog persistence. Product name is the unique key.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	UpdatePrice(ctx context.Context, name string, price float64) error
	UpdateCategory(ctx context.Context, name, category string) error
	List(ctx context.Context) ([]domain.Product, error)
}
