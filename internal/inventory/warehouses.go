package inventory

import "fmt"

// warehouseLocations maps SanMar warehouse IDs to their display locations.
// Treated as versioned reference data: update only when the vendor publishes
// a distribution-center change.
var warehouseLocations = map[string]string{
	"1":  "Seattle, WA",
	"2":  "Cincinnati, OH",
	"3":  "Dallas, TX",
	"4":  "Reno, NV",
	"5":  "Robbinsville, NJ",
	"6":  "Jacksonville, FL",
	"7":  "Minneapolis, MN",
	"12": "Phoenix, AZ",
	"31": "Richmond, VA",
}

// knownWarehouseOrder is the display priority for the vendor's distribution
// centers, most commonly stocked first. Warehouses outside this list sort
// alphabetically after it.
var knownWarehouseOrder = []string{
	"Dallas, TX",
	"Cincinnati, OH",
	"Richmond, VA",
	"Jacksonville, FL",
	"Phoenix, AZ",
	"Reno, NV",
	"Minneapolis, MN",
	"Robbinsville, NJ",
	"Seattle, WA",
}

// legacyListOrder is the warehouse sequence the legacy SOAP service uses when
// it answers with a bare quantity list instead of a per-warehouse tree.
var legacyListOrder = []string{"31", "12", "7", "6", "5", "4", "3", "2", "1"}

// WarehouseLocation resolves a vendor warehouse ID to its display location.
// Unknown IDs fall back to the vendor-supplied name when given, then to a
// generic "Warehouse {id}" label.
func WarehouseLocation(id, vendorName string) string {
	if loc, ok := warehouseLocations[id]; ok {
		return loc
	}
	if vendorName != "" {
		return vendorName
	}
	return fmt.Sprintf("Warehouse %s", id)
}
