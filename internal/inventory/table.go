package inventory

import (
	"sort"
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// sizeRank orders the base garment sizes; anything unlisted without a
// leading digit sorts after them at rank 99.
var sizeRank = map[string]int{
	"XS": 1,
	"S":  2,
	"M":  3,
	"L":  4,
	"XL": 5,
}

// FormatTable pivots canonical rows into a warehouse × size matrix.
// colorFilter narrows the row set to one exact color name; "" or "all"
// keeps everything. When duplicate rows land on the same warehouse+size
// cell, the row latest in input order wins the cell and the pricing entry,
// while totals sum every matching row — totals can therefore exceed the
// column's visible cells for duplicated input, which downstream consumers
// rely on.
func FormatTable(rows []domain.InventoryRow, colorFilter string) domain.FormattedInventoryTable {
	table := domain.FormattedInventoryTable{
		Headers:    []string{},
		Warehouses: []string{},
		Data:       map[string]map[string]int{},
		Totals:     map[string]int{},
		Pricing:    map[string]string{},
	}
	if len(rows) == 0 {
		return table
	}

	filtered := rows
	if colorFilter != "" && colorFilter != "all" {
		filtered = nil
		for _, row := range rows {
			if row.Color == colorFilter {
				filtered = append(filtered, row)
			}
		}
	}

	sizeSet := map[string]bool{}
	warehouseSet := map[string]bool{}
	for _, row := range filtered {
		if row.Size != "" {
			sizeSet[strings.ToUpper(row.Size)] = true
		}
		if row.Warehouse != "" {
			warehouseSet[row.Warehouse] = true
		}
	}

	headers := make([]string, 0, len(sizeSet))
	for size := range sizeSet {
		headers = append(headers, size)
	}
	sort.SliceStable(headers, func(i, j int) bool {
		return compareSizes(headers[i], headers[j]) < 0
	})

	table.Headers = headers
	table.Warehouses = orderWarehouses(warehouseSet)

	for size := range sizeSet {
		table.Totals[size] = 0
	}
	for _, warehouse := range table.Warehouses {
		cells := make(map[string]int, len(headers))
		for _, size := range headers {
			cells[size] = 0
		}
		table.Data[warehouse] = cells
	}

	for _, row := range filtered {
		size := strings.ToUpper(row.Size)
		qty := 0
		if row.Qty != nil {
			qty = *row.Qty
		}
		if size != "" && row.Warehouse != "" {
			table.Data[row.Warehouse][size] = qty
			table.Totals[size] += qty
		}
		if row.Price != nil && size != "" {
			table.Pricing[size] = row.Price.Display()
		}
	}

	return table
}

// compareSizes is the size-aware total order for column headers: named base
// sizes by rank, digit-led sizes (2XL, 3XL) after all named sizes ordered
// by their leading numeral then the remainder, everything else at rank 99
// lexically. Returns <0, 0, >0 like strings.Compare.
func compareSizes(a, b string) int {
	aDigit := leadingDigit(a)
	bDigit := leadingDigit(b)

	switch {
	case aDigit >= 0 && bDigit >= 0:
		if aDigit != bDigit {
			return aDigit - bDigit
		}
		return strings.Compare(a[1:], b[1:])
	case aDigit >= 0:
		return 1
	case bDigit >= 0:
		return -1
	}

	aRank := rankOf(a)
	bRank := rankOf(b)
	if aRank != bRank {
		return aRank - bRank
	}
	return strings.Compare(a, b)
}

func rankOf(size string) int {
	if r, ok := sizeRank[size]; ok {
		return r
	}
	return 99
}

func leadingDigit(size string) int {
	if size == "" {
		return -1
	}
	if c := size[0]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return -1
}

// orderWarehouses lists the known distribution centers first in their fixed
// priority order, then any remaining names alphabetically.
func orderWarehouses(present map[string]bool) []string {
	ordered := make([]string, 0, len(present))
	known := map[string]bool{}
	for _, w := range knownWarehouseOrder {
		known[w] = true
		if present[w] {
			ordered = append(ordered, w)
		}
	}
	var rest []string
	for w := range present {
		if !known[w] {
			rest = append(rest, w)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
