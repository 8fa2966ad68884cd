package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/metrics"
	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// LastModCache abstracts the read-through cache in front of last-modifier
// lookups (Redis). A cache failure degrades to the repository, never the
// request.
type LastModCache interface {
	Get(ctx context.Context, productName string) (string, bool, error)
	Set(ctx context.Context, productName, username string) error
	Invalidate(ctx context.Context, productName string) error
}

// AuditService records events and answers history queries. Entries are
// append-only; the repository assigns the sequence that defines recency.
type AuditService struct {
	repo  ports.LogRepository
	cache LastModCache
	log   zerolog.Logger
}

func NewAuditService(repo ports.LogRepository, cache LastModCache, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, cache: cache, log: log}
}

func (s *AuditService) Record(ctx context.Context, entry domain.LogEntry) error {
	entry.At = time.Now().UTC()
	if err := s.repo.Append(ctx, &entry); err != nil {
		return fmt.Errorf("record %s event: %w", entry.Event, err)
	}
	metrics.AuditEventsTotal.WithLabelValues(entry.Event).Inc()

	// The new entry supersedes whatever the cache held for this product.
	if entry.ProductName != "" {
		if err := s.cache.Invalidate(ctx, entry.ProductName); err != nil {
			s.log.Warn().Err(err).Str("product", entry.ProductName).Msg("failed to invalidate last_mod cache")
		}
	}

	s.log.Debug().
		Str("event", entry.Event).
		Str("username", entry.Username).
		Str("product", entry.ProductName).
		Uint64("seq", entry.Seq).
		Msg("event recorded")
	return nil
}

func (s *AuditService) LastModifier(ctx context.Context, productName string) (string, error) {
	if username, ok, err := s.cache.Get(ctx, productName); err != nil {
		s.log.Warn().Err(err).Str("product", productName).Msg("last_mod cache read failed, falling back to store")
	} else if ok {
		metrics.LastModCacheTotal.WithLabelValues("hit").Inc()
		return username, nil
	}
	metrics.LastModCacheTotal.WithLabelValues("miss").Inc()

	username, err := s.repo.LastModifier(ctx, productName)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, productName, username); err != nil {
		s.log.Warn().Err(err).Str("product", productName).Msg("failed to populate last_mod cache")
	}
	return username, nil
}

func (s *AuditService) ViewByUser(ctx context.Context, caller, username string) ([]domain.LogEntry, error) {
	if caller != username {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByUser(ctx, username)
}

func (s *AuditService) ViewByProduct(ctx context.Context, employee bool, productName string) ([]domain.LogEntry, error) {
	if !employee {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByProduct(ctx, productName)
}
