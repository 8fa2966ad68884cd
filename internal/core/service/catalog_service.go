package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// CatalogService owns product records. Writes are employee-only; the
// authorization gate enforces that before the service is reached, so the
// service only needs the acting username for audit events.
type CatalogService struct {
	repo  ports.ProductRepository
	audit ports.AuditClient
	log   zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, audit ports.AuditClient, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, audit: audit, log: log}
}

func (s *CatalogService) Create(ctx context.Context, actor string, product domain.Product) error {
	if err := s.repo.Create(ctx, &product); err != nil {
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	if err := s.audit.Record(ctx, domain.EventProductCreation, actor, product.Name); err != nil {
		s.log.Warn().Err(err).Str("product", product.Name).Msg("failed to record product_creation event")
	}

	s.log.Info().Str("product", product.Name).Str("actor", actor).Msg("product created")
	return nil
}

// Edit applies a price or category update. Price wins when both are present.
func (s *CatalogService) Edit(ctx context.Context, actor string, in ports.EditProductInput) error {
	switch {
	case in.NewPrice != nil:
		if err := s.repo.UpdatePrice(ctx, in.Name, *in.NewPrice); err != nil {
			return fmt.Errorf("edit product %s: %w", in.Name, err)
		}
	case in.NewCategory != "":
		if err := s.repo.UpdateCategory(ctx, in.Name, in.NewCategory); err != nil {
			return fmt.Errorf("edit product %s: %w", in.Name, err)
		}
	}

	if err := s.audit.Record(ctx, domain.EventProductEdit, actor, in.Name); err != nil {
		s.log.Warn().Err(err).Str("product", in.Name).Msg("failed to record product_edit event")
	}

	s.log.Info().Str("product", in.Name).Str("actor", actor).Msg("product edited")
	return nil
}

func (s *CatalogService) Lookup(ctx context.Context, name string) ([]domain.Product, error) {
	product, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return []domain.Product{*product}, nil
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return products, nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}
