package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/freckles-ink/printdesk/internal/domain"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "printdesk",
		Name:      "inventory_lookups_total",
		Help:      "Inventory style lookups by final outcome.",
	}, []string{"outcome"})

	fallbackSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "printdesk",
		Name:      "inventory_fallback_steps_total",
		Help:      "Fallback chain step attempts by result.",
	}, []string{"step", "result"})
)

// Query identifies a style lookup, optionally narrowed to one color/size.
type Query struct {
	Style string
	Color string
	Size  string
}

// VendorClient is the outbound surface the fallback chain drives. A returned
// error means the call itself failed (transport, timeout); vendor-reported
// problems come back value-level inside the InventoryResponse.
type VendorClient interface {
	StandardInventory(ctx context.Context, q Query) (domain.InventoryResponse, error)
	PromoStandardsInventory(ctx context.Context, q Query) (domain.InventoryResponse, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	InventoryBySlug(ctx context.Context, slug string) (domain.InventoryResponse, error)
}

// Service runs the ordered fallback chain over the vendor endpoints.
type Service struct {
	client VendorClient
	logger *slog.Logger
}

func NewService(client VendorClient, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// LookupStyle tries each vendor endpoint in priority order and returns the
// first success: a response that is not an error and carries at least one
// row. All-zero quantities still count as success — the vendor answered,
// the style is just out of stock. A step that fails or comes back empty
// only moves the chain along; the chain is exhausted, not aborted, and the
// steps run sequentially because each result gates the next.
func (s *Service) LookupStyle(ctx context.Context, q Query) domain.InventoryResponse {
	steps := []struct {
		name string
		run  func(context.Context) (domain.InventoryResponse, error)
	}{
		{"standard_soap", func(ctx context.Context) (domain.InventoryResponse, error) {
			return s.client.StandardInventory(ctx, q)
		}},
		{"promostandards", func(ctx context.Context) (domain.InventoryResponse, error) {
			return s.client.PromoStandardsInventory(ctx, q)
		}},
		{"search_slug", s.lookupViaSearch(q.Style)},
		{"direct_slug", func(ctx context.Context) (domain.InventoryResponse, error) {
			return s.client.InventoryBySlug(ctx, q.Style)
		}},
	}

	for _, step := range steps {
		resp, err := step.run(ctx)
		if err != nil {
			fallbackSteps.WithLabelValues(step.name, "error").Inc()
			s.logger.Warn("inventory lookup step failed",
				"step", step.name, "style", q.Style, "error", err)
			continue
		}
		if resp.OK() {
			fallbackSteps.WithLabelValues(step.name, "hit").Inc()
			lookupsTotal.WithLabelValues("found").Inc()
			s.logger.Info("inventory lookup succeeded",
				"step", step.name, "style", q.Style, "rows", len(resp.Rows))
			return resp
		}
		fallbackSteps.WithLabelValues(step.name, "miss").Inc()
		s.logger.Debug("inventory lookup step empty",
			"step", step.name, "style", q.Style, "message", resp.Message)
	}

	lookupsTotal.WithLabelValues("exhausted").Inc()
	return domain.ErrorResponse(fmt.Sprintf("Could not find inventory for style number: %s", q.Style))
}

// LookupSlug fetches inventory when the caller already knows the vendor's
// product slug, skipping the fallback chain.
func (s *Service) LookupSlug(ctx context.Context, slug string) domain.InventoryResponse {
	resp, err := s.client.InventoryBySlug(ctx, slug)
	if err != nil {
		lookupsTotal.WithLabelValues("error").Inc()
		s.logger.Warn("inventory lookup by slug failed", "slug", slug, "error", err)
		return domain.ErrorResponse(fmt.Sprintf("Failed to fetch inventory data: %v", err))
	}
	if resp.OK() {
		lookupsTotal.WithLabelValues("found").Inc()
	}
	return resp
}

// lookupViaSearch is fallback step 3: search the catalog for the style,
// take the result whose style/code matches the query exactly, and fetch
// inventory by its slug. Fuzzy matches are never used; a near miss falls
// through to the next step instead of guessing.
func (s *Service) lookupViaSearch(style string) func(context.Context) (domain.InventoryResponse, error) {
	return func(ctx context.Context) (domain.InventoryResponse, error) {
		products, err := s.client.SearchProducts(ctx, style)
		if err != nil {
			return domain.InventoryResponse{}, err
		}
		slug := ""
		for _, p := range products {
			if (p.StyleNumber == style || p.Code == style) && p.Slug != "" {
				slug = p.Slug
				break
			}
		}
		if slug == "" {
			return domain.ErrorResponse(fmt.Sprintf("Could not find product with style number: %s", style)), nil
		}
		return s.client.InventoryBySlug(ctx, slug)
	}
}
