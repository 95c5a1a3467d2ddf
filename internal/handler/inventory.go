package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
	"github.com/freckles-ink/printdesk/internal/inventory"
)

// InventoryService runs style and slug lookups against the vendor.
// Failures that the vendor reported (or an exhausted fallback chain) come
// back value-level on the response, not as Go errors.
type InventoryService interface {
	LookupStyle(ctx context.Context, q inventory.Query) domain.InventoryResponse
	LookupSlug(ctx context.Context, slug string) domain.InventoryResponse
}

// ProductSearcher searches the vendor catalog.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// InventoryHandler serves the inventory proxy endpoints.
type InventoryHandler struct {
	service  InventoryService
	searcher ProductSearcher
	logger   *slog.Logger
}

func NewInventoryHandler(service InventoryService, searcher ProductSearcher, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{service: service, searcher: searcher, logger: logger}
}

// Search handles POST /api/search: forward a free-text query to the vendor
// catalog and return the parsed product list.
func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		respondError(w, r, h.logger, domain.Invalid("inventory.search", "Search query is required"))
		return
	}

	products, err := h.searcher.SearchProducts(r.Context(), query)
	if err != nil {
		respondError(w, r, h.logger, domain.Unavailable(err, "inventory.search", "Vendor product search failed"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"products": products})
}

// BySlug handles GET /api/inventory/{slug}. Vendor-reported problems stay
// value-level in the response body so the UI can show the vendor's message.
func (h *InventoryHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondError(w, r, h.logger, domain.Invalid("inventory.by_slug", "Product slug is required"))
		return
	}

	respondJSON(w, http.StatusOK, h.service.LookupSlug(r.Context(), slug))
}

// ByStyle handles GET /api/inventory-by-style/{style}, running the full
// fallback chain. An exhausted chain is a 404: the style genuinely could
// not be found on any endpoint.
func (h *InventoryHandler) ByStyle(w http.ResponseWriter, r *http.Request) {
	style := r.PathValue("style")
	if style == "" {
		respondError(w, r, h.logger, domain.Invalid("inventory.by_style", "Style number is required"))
		return
	}

	resp := h.service.LookupStyle(r.Context(), inventory.Query{
		Style: style,
		Color: r.URL.Query().Get("color"),
		Size:  r.URL.Query().Get("size"),
	})
	if resp.Error {
		respondError(w, r, h.logger, domain.Errorf(domain.ENOTFOUND, "inventory.by_style", "%s", resp.Message))
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Format handles POST /api/inventory/format: pivot normalized rows into
// the warehouse × size table, optionally filtered to one color.
func (h *InventoryHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows  []domain.InventoryRow `json:"rows"`
		Color string                `json:"color"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory.FormatTable(req.Rows, req.Color))
}

// Export handles POST /api/export-inventory: render the pivot table as a
// CSV attachment.
func (h *InventoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req struct {
		domain.FormattedInventoryTable
		ProductName string `json:"productName"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if len(req.Headers) == 0 || len(req.Warehouses) == 0 {
		respondError(w, r, h.logger, domain.Invalid("inventory.export", "Invalid inventory data for export"))
		return
	}

	csv := inventory.ExportCSV(req.FormattedInventoryTable)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", inventory.ExportFilename(req.ProductName)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csv)); err != nil {
		h.logger.Error("failed to write csv export", "error", err)
	}
}
