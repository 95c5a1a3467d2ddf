package inventory

import (
	"fmt"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// Parser diagnostics. These strings are part of the API surface: the UI and
// the fallback chain both match on them, so they must stay byte-stable.
const (
	msgInvalidStructure = "Invalid inventory data structure"
	msgNoInventoryData  = "No inventory data found"
	msgNotFoundInXML    = "Inventory data not found in response"
)

// formatError wraps an unexpected traversal failure into the standard
// error-response shape. Parsers never let a panic or error escape their
// boundary; everything surfaces through the response's error/message fields.
func formatError(detail any) domain.InventoryResponse {
	return domain.ErrorResponse(fmt.Sprintf("Error formatting inventory data: %v", detail))
}
