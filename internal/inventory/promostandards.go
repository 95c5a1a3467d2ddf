package inventory

import "github.com/freckles-ink/printdesk/internal/domain"

// ParsePromoStandards converts a decoded PromoStandards Inventory 2.0.0
// GetInventoryLevels response into canonical rows. The document arrives as
// an XML map tree; every field is probed through the dual-key helpers
// because the decoder may or may not have stripped the shar: namespace
// prefix, and Product/PartInventory nodes may be single objects or arrays.
func ParsePromoStandards(doc map[string]any) (resp domain.InventoryResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = formatError(r)
		}
	}()

	if fault, ok := xmlFindFirst(doc, "Fault"); ok {
		msg := ""
		for _, f := range toMapSlice(fault) {
			msg = xmlFindString(f, "faultstring")
		}
		return domain.ErrorResponse(msg)
	}

	products := xmlFindAll(doc, "Product")
	if len(products) == 0 {
		return domain.ErrorResponse(msgNotFoundInXML)
	}

	var rows []domain.InventoryRow
	for _, product := range products {
		style := xmlString(product, "productId")
		description := xmlString(product, "productName")
		partArray := xmlChild(product, "PartInventoryArray")
		if partArray == nil {
			continue
		}
		for _, part := range xmlList(partArray, "PartInventory") {
			partID := xmlString(part, "partId")
			color := xmlString(part, "partColor")
			size := xmlString(part, "labelSize")
			if d := xmlString(part, "partDescription"); d != "" {
				description = d
			}
			quantity := xmlChild(part, "Quantity")
			if quantity == nil {
				continue
			}
			whseID := xmlString(quantity, "warehouseId")
			whseName := xmlString(quantity, "warehouseName")
			qty := xmlInt(quantity, "quantityAvailable")
			rows = append(rows, domain.InventoryRow{
				Style:          style,
				PartID:         partID,
				Color:          color,
				Size:           size,
				Description:    description,
				WarehouseID:    whseID,
				Warehouse:      WarehouseLocation(whseID, whseName),
				Qty:            domain.IntPtr(qty),
				TotalAvailable: domain.IntPtr(qty),
			})
		}
	}

	if len(rows) == 0 {
		return domain.ErrorResponse(msgNoInventoryData)
	}
	return domain.InventoryResponse{Rows: rows}
}
