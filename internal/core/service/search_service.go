package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/metrics"
	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// SearchService resolves candidates through the catalog service, then
// enriches each with its last modifier from the audit service, preserving
// catalog order. Enrichment is all-or-nothing: one failed lookup discards
// the whole result.
type SearchService struct {
	catalog ports.CatalogClient
	audit   ports.AuditClient
	log     zerolog.Logger
}

func NewSearchService(catalog ports.CatalogClient, audit ports.AuditClient, log zerolog.Logger) *SearchService {
	return &SearchService{catalog: catalog, audit: audit, log: log}
}

func (s *SearchService) Search(ctx context.Context, username string, q ports.SearchQuery) ([]domain.SearchResult, error) {
	if q.ProductName == "" && q.Category == "" {
		return nil, domain.ErrInvalidQuery
	}

	var (
		products []domain.Product
		term     string
		err      error
	)
	if q.ProductName != "" {
		term = q.ProductName
		var product domain.Product
		if product, err = s.catalog.ProductByName(ctx, q.ProductName); err == nil {
			products = []domain.Product{product}
		}
	} else {
		term = q.Category
		products, err = s.catalog.ProductsByCategory(ctx, q.Category)
	}
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("resolve %q: %w", term, err)
	}

	results := make([]domain.SearchResult, 0, len(products))
	for _, product := range products {
		lastMod, err := s.audit.LastModifier(ctx, product.Name)
		if err != nil {
			metrics.SearchesTotal.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("enrich %s: %w", product.Name, err)
		}
		results = append(results, domain.SearchResult{Product: product, LastModifiedBy: lastMod})
	}

	if err := s.audit.Record(ctx, domain.EventSearch, username, term); err != nil {
		s.log.Warn().Err(err).Str("term", term).Msg("failed to record search event")
	}

	metrics.SearchesTotal.WithLabelValues("resolved").Inc()
	s.log.Info().Str("username", username).Str("term", term).Int("results", len(results)).Msg("search resolved")
	return results, nil
}
