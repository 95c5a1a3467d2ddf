package inventory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// Wire shapes for the vendor's product detail endpoint, a flatter variant
// used on single-product pages: data -> colors -> sizes -> warehouses, one
// canonical row per warehouse leaf.
type detailDocument struct {
	Data *detailProduct `json:"data"`
}

type detailProduct struct {
	StyleCode   string        `json:"styleCode"`
	Description string        `json:"description"`
	Colors      []detailColor `json:"colors"`
}

type detailColor struct {
	Name  string       `json:"name"`
	Code  string       `json:"code"`
	Sizes []detailSize `json:"sizes"`
}

type detailSize struct {
	Size       string            `json:"size"`
	PartID     string            `json:"partId"`
	Price      *domain.Price     `json:"price"`
	Warehouses []detailWarehouse `json:"warehouses"`
}

type detailWarehouse struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
	Qty  *flexInt   `json:"qty"`
}

// flexString tolerates vendor fields that flip between JSON string and
// number across catalog revisions (warehouse and color codes mostly).
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// flexInt parses a quantity delivered as a number or a numeric string.
// Unparseable values leave Valid false, which the parser reports as an
// unknown quantity rather than zero.
type flexInt struct {
	Value int
	Valid bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		trimmed = strings.TrimSpace(v)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		// Quantity present but not an integer; report unknown, not zero.
		return nil
	}
	f.Value = n
	f.Valid = true
	return nil
}

// ParseProductDetail converts the product detail document into canonical
// rows. Unlike ParseWebJSON, an absent or unparseable quantity stays null:
// this endpoint distinguishes "not reported for this warehouse" from "zero
// on the shelf", and the two must not be conflated.
func ParseProductDetail(body []byte) (resp domain.InventoryResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = formatError(r)
		}
	}()

	var doc detailDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Data == nil {
		return domain.ErrorResponse(msgInvalidStructure)
	}

	product := doc.Data
	var rows []domain.InventoryRow
	for _, color := range product.Colors {
		for _, size := range color.Sizes {
			partID := size.PartID
			if partID == "" {
				partID = fmt.Sprintf("%s-%s-%s", product.StyleCode, color.Code, size.Size)
			}
			for _, wh := range size.Warehouses {
				var qty *int
				if wh.Qty != nil && wh.Qty.Valid {
					qty = domain.IntPtr(wh.Qty.Value)
				}
				rows = append(rows, domain.InventoryRow{
					Style:          product.StyleCode,
					PartID:         partID,
					Color:          color.Name,
					Size:           size.Size,
					Description:    product.Description,
					WarehouseID:    string(wh.ID),
					Warehouse:      WarehouseLocation(string(wh.ID), wh.Name),
					Qty:            qty,
					TotalAvailable: qty,
					Price:          size.Price,
				})
			}
		}
	}

	if len(rows) == 0 {
		return domain.ErrorResponse(msgNoInventoryData)
	}
	return domain.InventoryResponse{Rows: rows}
}
