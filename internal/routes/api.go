package routes

import (
	"github.com/freckles-ink/printdesk/internal/router"
)

// RegisterAPIRoutes registers the inventory proxy and quote calculator
// endpoints the UI calls.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Inventory proxy
	r.Post("/api/search", deps.Inventory.Search)
	r.Get("/api/inventory/{slug}", deps.Inventory.BySlug)
	r.Get("/api/inventory-by-style/{style}", deps.Inventory.ByStyle)
	r.Post("/api/inventory/format", deps.Inventory.Format)
	r.Post("/api/export-inventory", deps.Inventory.Export)

	// Quote calculators
	r.Post("/api/quote/{kind}", deps.Pricing.Quote)
}
