package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// LogRepository defines audit-log persistence. Append assigns the entry's
// sequence number; the sequence is total and monotonic across all entries.
type LogRepository interface {
	Append(ctx context.Context, entry *domain.LogEntry) error
	// LastModifier returns the username of the highest-sequence entry naming
	// the product, or domain.ErrNoHistory when none exists.
	LastModifier(ctx context.Context, productName string) (string, error)
	ListByUser(ctx context.Context, username string) ([]domain.LogEntry, error)
	ListByProduct(ctx context.Context, productName string) ([]domain.LogEntry, error)
}
