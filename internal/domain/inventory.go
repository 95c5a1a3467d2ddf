package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// InventoryRow is the canonical unit every vendor parser produces: one
// style+color+size quantity at one warehouse. Qty and TotalAvailable are
// pointers because "unknown" (nil) and "known to be zero" are different
// answers and the vendor endpoints disagree about which one a missing
// field means.
type InventoryRow struct {
	Style          string `json:"style"`
	PartID         string `json:"partId"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	Description    string `json:"description"`
	WarehouseID    string `json:"warehouseId"`
	Warehouse      string `json:"warehouse"`
	Qty            *int   `json:"qty"`
	TotalAvailable *int   `json:"totalAvailable"`
	Price          *Price `json:"price,omitempty"`
}

// InventoryResponse wraps the rows from a fetch+parse operation. Error is
// only set when no usable data could be produced; a style with rows but
// zero units everywhere is a valid, non-error answer.
type InventoryResponse struct {
	Rows    []InventoryRow `json:"rows"`
	Error   bool           `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// OK reports whether the response counts as a successful lookup: not an
// error and carrying at least one row.
func (r InventoryResponse) OK() bool {
	return !r.Error && len(r.Rows) > 0
}

// ErrorResponse builds the standard failed-lookup shape.
func ErrorResponse(message string) InventoryResponse {
	return InventoryResponse{Rows: []InventoryRow{}, Error: true, Message: message}
}

// FormattedInventoryTable is the warehouse × size pivot of a row set.
// Data is dense: every warehouse in Warehouses has an entry for every size
// in Headers, zero when no row supplied a quantity for that cell.
type FormattedInventoryTable struct {
	Headers    []string                  `json:"headers"`
	Warehouses []string                  `json:"warehouses"`
	Data       map[string]map[string]int `json:"data"`
	Totals     map[string]int            `json:"totals"`
	Pricing    map[string]string         `json:"pricing"`
}

// Product is one vendor catalog search result.
type Product struct {
	Slug        string `json:"slug"`
	Code        string `json:"code"`
	StyleNumber string `json:"styleNumber"`
	Name        string `json:"name"`
	PriceText   string `json:"priceText"`
	ImageURL    string `json:"imageUrl,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Price holds a unit price that vendor responses deliver as either a JSON
// number or a display string ("$4.99/dz").
type Price struct {
	Amount  float64
	Text    string
	Numeric bool
}

// Display renders the price the way the pivot table and CSV export show
// it: two decimals for numeric prices, the vendor's text otherwise.
func (p Price) Display() string {
	if p.Numeric {
		return strconv.FormatFloat(p.Amount, 'f', 2, 64)
	}
	return p.Text
}

// UnmarshalJSON accepts a number or a string. Anything else is rejected so
// a malformed price fails the parse instead of silently becoming zero.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		p.Text = text
		return nil
	}
	var amount float64
	if err := json.Unmarshal(b, &amount); err != nil {
		return fmt.Errorf("price is neither number nor string: %w", err)
	}
	p.Amount = amount
	p.Numeric = true
	return nil
}

// MarshalJSON writes the price back in the form it arrived.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Numeric {
		return json.Marshal(p.Amount)
	}
	return json.Marshal(p.Text)
}

var (
	_ json.Marshaler   = (*Price)(nil)
	_ json.Unmarshaler = (*Price)(nil)
)

// IntPtr returns a pointer to v, for building rows with known quantities.
func IntPtr(v int) *int {
	return &v
}
