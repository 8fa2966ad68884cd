package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// SearchQuery names exactly one of a product or a category to search for.
type SearchQuery struct {
	ProductName string
	Category    string
}

// SearchService resolves products via the catalog service and enriches each
// with its last modifier via the audit service. Enrichment is all-or-nothing.
type SearchService interface {
	// Search errors with domain.ErrInvalidQuery when the query names neither
	// a product nor a category, domain.ErrProductNotFound when the catalog
	// resolves nothing, and domain.ErrNoHistory when any candidate has no
	// audit history. No partial result lists are returned.
	Search(ctx context.Context, username string, q SearchQuery) ([]domain.SearchResult, error)
}
