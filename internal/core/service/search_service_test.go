package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

func TestSearchService_Search_ByName(t *testing.T) {
	catalog := newStubCatalogClient(
		domain.Product{Name: "widget", Price: 3.00, Category: "tools"},
	)
	audit := newStubAuditClient()
	audit.lastMod["widget"] = "bob"
	svc := NewSearchService(catalog, audit, zerolog.Nop())

	results, err := svc.Search(context.Background(), "alice", ports.SearchQuery{ProductName: "widget"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "widget" || results[0].LastModifiedBy != "bob" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if len(audit.events) != 1 || audit.events[0].Event != domain.EventSearch {
		t.Fatalf("expected one search event, got %+v", audit.events)
	}
	if audit.events[0].ProductName != "widget" {
		t.Fatalf("search event should carry the term, got %+v", audit.events[0])
	}
}

func TestSearchService_Search_ByCategory(t *testing.T) {
	catalog := newStubCatalogClient(
		domain.Product{Name: "widget", Price: 3.00, Category: "tools"},
		domain.Product{Name: "gadget", Price: 5.50, Category: "tools"},
	)
	audit := newStubAuditClient()
	audit.lastMod["widget"] = "bob"
	audit.lastMod["gadget"] = "carol"
	svc := NewSearchService(catalog, audit, zerolog.Nop())

	results, err := svc.Search(context.Background(), "alice", ports.SearchQuery{Category: "tools"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.LastModifiedBy == "" {
			t.Fatalf("result %s missing last modifier", r.Name)
		}
	}
}

func TestSearchService_Search_NoQuery(t *testing.T) {
	catalog := newStubCatalogClient()
	svc := NewSearchService(catalog, newStubAuditClient(), zerolog.Nop())

	if _, err := svc.Search(context.Background(), "alice", ports.SearchQuery{}); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if len(catalog.calls) != 0 {
		t.Fatalf("catalog must not be called for an empty query, got %v", catalog.calls)
	}
}

func TestSearchService_Search_UnknownProduct(t *testing.T) {
	svc := NewSearchService(newStubCatalogClient(), newStubAuditClient(), zerolog.Nop())

	_, err := svc.Search(context.Background(), "alice", ports.SearchQuery{ProductName: "missing"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSearchService_Search_EnrichmentIsAllOrNothing(t *testing.T) {
	catalog := newStubCatalogClient(
		domain.Product{Name: "widget", Price: 3.00, Category: "tools"},
		domain.Product{Name: "gadget", Price: 5.50, Category: "tools"},
	)
	audit := newStubAuditClient()
	// Only one of the two candidates has history; the whole search must fail.
	audit.lastMod["widget"] = "bob"
	svc := NewSearchService(catalog, audit, zerolog.Nop())

	results, err := svc.Search(context.Background(), "alice", ports.SearchQuery{Category: "tools"})
	if !errors.Is(err, domain.ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
	if results != nil {
		t.Fatalf("failed enrichment must discard all results, got %+v", results)
	}
	for _, ev := range audit.events {
		if ev.Event == domain.EventSearch {
			t.Fatalf("rejected search must not be audited, got %+v", audit.events)
		}
	}
}
