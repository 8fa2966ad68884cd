package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// AuditService records discrete events and answers history queries.
type AuditService interface {
	Record(ctx context.Context, entry domain.LogEntry) error
	// LastModifier returns domain.ErrNoHistory when no entry names the product.
	LastModifier(ctx context.Context, productName string) (string, error)
	// ViewByUser lets callers read their own history only; asking for another
	// user's log yields domain.ErrForbidden.
	ViewByUser(ctx context.Context, caller, username string) ([]domain.LogEntry, error)
	// ViewByProduct is employee-only; non-employees get domain.ErrForbidden.
	ViewByProduct(ctx context.Context, employee bool, productName string) ([]domain.LogEntry, error)
}
