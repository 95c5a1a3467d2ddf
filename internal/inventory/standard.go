package inventory

import (
	"strconv"
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// ParseStandardInventory converts a decoded legacy WebServicePort
// getInventoryQtyForStyleColorSize response into canonical rows. The tree
// is style -> sku[] -> whse[] with per-warehouse quantities; an unparseable
// qty stays null. Very old service versions answer with a bare listResponse
// integer list instead, which maps positionally onto the documented
// warehouse ID sequence.
func ParseStandardInventory(doc map[string]any) (resp domain.InventoryResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = formatError(r)
		}
	}()

	errOccurred := false
	if s := xmlFindString(doc, "errorOccurred"); s != "" {
		switch strings.ToLower(s) {
		case "true", "1", "yes":
			errOccurred = true
		}
	}
	message := xmlFindString(doc, "message")
	style := xmlFindString(doc, "style")

	var rows []domain.InventoryRow
	for _, sku := range xmlFindAll(doc, "sku") {
		color := xmlString(sku, "color")
		size := xmlString(sku, "size")
		for _, whse := range xmlList(sku, "whse") {
			whseID := xmlString(whse, "whseID")
			whseName := xmlString(whse, "whseName")
			rows = append(rows, domain.InventoryRow{
				Style:       style,
				Color:       color,
				Size:        size,
				WarehouseID: whseID,
				Warehouse:   WarehouseLocation(whseID, whseName),
				Qty:         xmlIntPtr(whse, "qty"),
			})
		}
	}

	// Bare integer-list fallback: quantities arrive in the guide's fixed
	// warehouse order with no per-size breakdown.
	if len(rows) == 0 {
		var qtys []int
		if list, ok := xmlFindFirst(doc, "listResponse"); ok {
			for _, v := range toAnySlice(list) {
				if n, err := strconv.Atoi(strings.TrimSpace(xmlText(v))); err == nil {
					qtys = append(qtys, n)
				}
			}
		}
		for i, qty := range qtys {
			if i >= len(legacyListOrder) {
				break
			}
			whseID := legacyListOrder[i]
			rows = append(rows, domain.InventoryRow{
				Style:       style,
				WarehouseID: whseID,
				Warehouse:   WarehouseLocation(whseID, ""),
				Qty:         domain.IntPtr(qty),
			})
		}
	}

	if errOccurred {
		if message == "" {
			message = msgNoInventoryData
		}
		return domain.InventoryResponse{Rows: rows, Error: true, Message: message}
	}
	if len(rows) == 0 {
		if message == "" {
			message = msgNoInventoryData
		}
		return domain.ErrorResponse(message)
	}
	return domain.InventoryResponse{Rows: rows, Message: message}
}

func toAnySlice(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}
