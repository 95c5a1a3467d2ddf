package inventory

import (
	"strconv"
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// ExportCSV renders the pivot table in the fixed export layout: size header
// row, pricing row, one row per warehouse, totals row, every row
// newline-terminated. Fields are joined bare, without RFC 4180 quoting:
// the layout predates this service and its consumers split on commas, so a
// warehouse label like "Dallas, TX" intentionally spans two cells.
func ExportCSV(table domain.FormattedInventoryTable) string {
	var b strings.Builder

	b.WriteString(",")
	b.WriteString(strings.Join(table.Headers, ","))
	b.WriteString("\n")

	b.WriteString("Price ($)")
	for _, size := range table.Headers {
		b.WriteString(",")
		if price, ok := table.Pricing[size]; ok && price != "" {
			b.WriteString(price)
		} else {
			b.WriteString("-")
		}
	}
	b.WriteString("\n")

	for _, warehouse := range table.Warehouses {
		b.WriteString(warehouse)
		for _, size := range table.Headers {
			b.WriteString(",")
			b.WriteString(strconv.Itoa(table.Data[warehouse][size]))
		}
		b.WriteString("\n")
	}

	b.WriteString("Total")
	for _, size := range table.Headers {
		b.WriteString(",")
		b.WriteString(strconv.Itoa(table.Totals[size]))
	}
	b.WriteString("\n")

	return b.String()
}

// ExportFilename derives the download filename from the product label.
func ExportFilename(productName string) string {
	name := strings.TrimSpace(productName)
	if name == "" {
		name = "export"
	}
	return "inventory-" + name + ".csv"
}
