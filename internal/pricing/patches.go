package pricing

import "github.com/shopspring/decimal"

// UV-printed patch base prices by material.
var patchBasePrices = map[string]decimal.Decimal{
	"leather":    decimal.NewFromInt(10),
	"faux":       decimal.NewFromInt(9),
	"sublimated": decimal.NewFromInt(10),
}

var patchHeatCharge = decimal.NewFromInt(3)

// Artwork fee options for patch jobs.
const (
	ArtNone           = "none"
	ArtNew            = "new"
	ArtVectorChanges  = "vector_changes"
	ArtVectorNoChange = "vector_no_change"
)

var (
	artHourlyRate     = decimal.NewFromInt(75)
	artVectorChanges  = decimal.NewFromInt(50)
	artVectorNoChange = decimal.NewFromInt(25)
)

// PatchInput describes a UV-printed patch job.
type PatchInput struct {
	Quantity      int             `json:"quantity"`
	PatchType     string          `json:"patchType"`
	IncludeHeat   bool            `json:"includeHeat"`
	GarmentCost   decimal.Decimal `json:"garmentCost"`
	MarkupPercent decimal.Decimal `json:"markupPercent"`
	ArtOption     string          `json:"artOption"`
	ArtHours      decimal.Decimal `json:"artHours"`
}

type PatchQuote struct {
	BasePerPatch    string `json:"basePerPatch"`
	HeatPerPatch    string `json:"heatPerPatch"`
	UnitPatchPrice  string `json:"unitPatchPrice"`
	PatchesSubtotal string `json:"patchesSubtotal"`
	GarmentSubtotal string `json:"garmentSubtotal"`
	PreMarkup       string `json:"preMarkup"`
	MarkupAmount    string `json:"markupAmount"`
	ArtFee          string `json:"artFee"`
	GrandTotal      string `json:"grandTotal"`
	PricePerItem    string `json:"pricePerItem"`
}

// Patches prices a patch job. Returns ErrUnknownPreset for a patch type
// outside the material table.
func Patches(in PatchInput) (PatchQuote, error) {
	base, ok := patchBasePrices[in.PatchType]
	if !ok {
		return PatchQuote{}, ErrUnknownPreset
	}

	qty := max(0, in.Quantity)
	q := decimal.NewFromInt(int64(qty))

	heat := decimal.Zero
	if in.IncludeHeat {
		heat = patchHeatCharge
	}
	unitPrice := base.Add(heat)

	patchesSubtotal := unitPrice.Mul(q)
	garmentSubtotal := in.GarmentCost.Mul(q)
	preMarkup := patchesSubtotal.Add(garmentSubtotal)
	markupAmount := preMarkup.Mul(in.MarkupPercent).Div(hundred)

	artFee := decimal.Zero
	switch in.ArtOption {
	case ArtNew:
		artFee = artHourlyRate.Mul(in.ArtHours)
	case ArtVectorChanges:
		artFee = artVectorChanges
	case ArtVectorNoChange:
		artFee = artVectorNoChange
	}

	grandTotal := preMarkup.Add(markupAmount).Add(artFee)
	pricePerItem := safeDiv(grandTotal, q)

	return PatchQuote{
		BasePerPatch:    money(base),
		HeatPerPatch:    money(heat),
		UnitPatchPrice:  money(unitPrice),
		PatchesSubtotal: money(patchesSubtotal),
		GarmentSubtotal: money(garmentSubtotal),
		PreMarkup:       money(preMarkup),
		MarkupAmount:    money(markupAmount),
		ArtFee:          money(artFee),
		GrandTotal:      money(grandTotal),
		PricePerItem:    money(pricePerItem),
	}, nil
}
