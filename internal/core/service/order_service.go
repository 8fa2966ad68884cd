package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/metrics"
	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// OrderService prices orders by resolving each line against the catalog
// service, in input order, one call at a time. The first failing line aborts
// the order: no further catalog calls, no partial total.
type OrderService struct {
	catalog ports.CatalogClient
	audit   ports.AuditClient
	log     zerolog.Logger
}

func NewOrderService(catalog ports.CatalogClient, audit ports.AuditClient, log zerolog.Logger) *OrderService {
	return &OrderService{catalog: catalog, audit: audit, log: log}
}

func (s *OrderService) Price(ctx context.Context, username string, lines []domain.OrderLine) (domain.OrderResult, error) {
	if len(lines) == 0 {
		return domain.OrderResult{}, domain.ErrInvalidOrder
	}

	var total float64
	for _, line := range lines {
		if line.Product == "" || line.Quantity <= 0 {
			metrics.OrdersPricedTotal.WithLabelValues("rejected").Inc()
			return domain.OrderResult{}, domain.ErrInvalidOrder
		}

		product, err := s.catalog.ProductByName(ctx, line.Product)
		if err != nil {
			metrics.OrdersPricedTotal.WithLabelValues("rejected").Inc()
			return domain.OrderResult{}, fmt.Errorf("price line %s: %w", line.Product, err)
		}

		total += product.Price * float64(line.Quantity)
	}

	// Half-up to 2 decimal places. Totals are non-negative, so rounding half
	// away from zero is the same thing.
	total = math.Round(total*100) / 100

	if err := s.audit.Record(ctx, domain.EventOrder, username, ""); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record order event")
	}

	metrics.OrdersPricedTotal.WithLabelValues("priced").Inc()
	s.log.Info().Str("username", username).Int("lines", len(lines)).Float64("total", total).Msg("order priced")
	return domain.OrderResult{Total: total}, nil
}
