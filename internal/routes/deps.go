package routes

import (
	"github.com/freckles-ink/printdesk/internal/handler"
)

// APIDeps contains the handlers behind the JSON API.
type APIDeps struct {
	Inventory *handler.InventoryHandler
	Pricing   *handler.PricingHandler
}
