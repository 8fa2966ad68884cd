package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// OrderService prices an order by fanning out to the catalog service, one
// line at a time, aborting on the first failure.
type OrderService interface {
	// Price errors with domain.ErrInvalidOrder for empty or malformed lines
	// and domain.ErrProductNotFound when a line names an unknown product.
	// Partial totals are never returned.
	Price(ctx context.Context, username string, lines []domain.OrderLine) (domain.OrderResult, error)
}
