package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// TokenVerifier asks the identity service whether a bearer token is valid.
// An invalid token yields a decision with Valid=false and a nil error; errors
// are reserved for transport failures.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.AuthDecision, error)
}

// CatalogClient resolves products through the catalog service.
type CatalogClient interface {
	// ProductByName returns domain.ErrProductNotFound when the catalog has no
	// such product.
	ProductByName(ctx context.Context, name string) (domain.Product, error)
	// ProductsByCategory returns domain.ErrProductNotFound when the category
	// is empty.
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}

// AuditClient records events with, and queries, the audit service.
type AuditClient interface {
	// Record is fire-and-forget from the caller's perspective: callers log a
	// failure but never branch on it.
	Record(ctx context.Context, event, username, productName string) error
	// LastModifier returns domain.ErrNoHistory when nothing ever touched the
	// product.
	LastModifier(ctx context.Context, productName string) (string, error)
}
