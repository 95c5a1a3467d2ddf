package inventory

import (
	"encoding/json"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// Wire shapes for the vendor's WebJSON inventory endpoint. Inventory nests
// four levels deep: items -> inventoryItems -> warehouseInventory ->
// inventoryBySize, one canonical row per size leaf.
type webDocument struct {
	Items *[]webItem `json:"items"`
}

type webItem struct {
	StyleCode      string             `json:"styleCode"`
	Style          string             `json:"style"`
	PartID         string             `json:"partId"`
	ColorName      string             `json:"colorName"`
	Description    string             `json:"description"`
	Price          *domain.Price      `json:"price"`
	InventoryItems []webInventoryItem `json:"inventoryItems"`
}

type webInventoryItem struct {
	PartID             string                  `json:"partId"`
	ColorName          string                  `json:"colorName"`
	WarehouseInventory []webWarehouseInventory `json:"warehouseInventory"`
}

type webWarehouseInventory struct {
	WarehouseNo     flexString         `json:"warehouseNo"`
	Warehouse       string             `json:"warehouse"`
	InventoryBySize []webSizeInventory `json:"inventoryBySize"`
}

type webSizeInventory struct {
	Size         string `json:"size"`
	QtyAvailable *int   `json:"qtyAvailable"`
}

// ParseWebJSON converts the WebJSON inventory document into canonical rows.
// A missing or non-array items node is a shape error; a present items node
// that yields zero size leaves is an empty result. An absent qtyAvailable on
// a size leaf means zero stock here, not unknown — this endpoint omits the
// field for depleted sizes.
func ParseWebJSON(body []byte) (resp domain.InventoryResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = formatError(r)
		}
	}()

	var doc webDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Items == nil {
		return domain.ErrorResponse(msgInvalidStructure)
	}

	var rows []domain.InventoryRow
	for _, item := range *doc.Items {
		style := item.StyleCode
		if style == "" {
			style = item.Style
		}
		for _, invItem := range item.InventoryItems {
			partID := item.PartID
			if partID == "" {
				partID = invItem.PartID
			}
			color := item.ColorName
			if color == "" {
				color = invItem.ColorName
			}
			for _, whInv := range invItem.WarehouseInventory {
				for _, sizeInv := range whInv.InventoryBySize {
					qty := 0
					if sizeInv.QtyAvailable != nil {
						qty = *sizeInv.QtyAvailable
					}
					rows = append(rows, domain.InventoryRow{
						Style:          style,
						PartID:         partID,
						Color:          color,
						Size:           sizeInv.Size,
						Description:    item.Description,
						WarehouseID:    string(whInv.WarehouseNo),
						Warehouse:      whInv.Warehouse,
						Qty:            domain.IntPtr(qty),
						TotalAvailable: domain.IntPtr(qty),
						Price:          item.Price,
					})
				}
			}
		}
	}

	if len(rows) == 0 {
		return domain.ErrorResponse(msgNoInventoryData)
	}
	return domain.InventoryResponse{Rows: rows}
}
