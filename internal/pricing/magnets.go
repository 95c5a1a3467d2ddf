package pricing

import "github.com/shopspring/decimal"

var magnetSetupFee = decimal.NewFromInt(100)

// MagnetInput describes a magnet run. MaterialWidthIn defaults to the 22"
// roll when zero.
type MagnetInput struct {
	HeightIn        decimal.Decimal `json:"heightIn"`
	WidthIn         decimal.Decimal `json:"widthIn"`
	Quantity        int             `json:"quantity"`
	PricePerFoot    decimal.Decimal `json:"pricePerFoot"`
	MaterialWidthIn decimal.Decimal `json:"materialWidthIn"`
}

type MagnetQuote struct {
	HorizontalFit   string `json:"horizontalFit"`
	MinimalLengthFt string `json:"minimalLengthFt"`
	ActualLengthFt  string `json:"actualLengthFt"`
	MaterialCost    string `json:"materialCost"`
	SetupCost       string `json:"setupCost"`
	TotalCost       string `json:"totalCost"`
	PricePerMagnet  string `json:"pricePerMagnet"`
}

// Magnets prices a magnet run: minimal material footage from nesting the
// pieces across the roll, plus one foot of lead when anything is produced,
// plus the fixed setup.
func Magnets(in MagnetInput) MagnetQuote {
	qty := max(0, in.Quantity)
	q := decimal.NewFromInt(int64(qty))

	materialWidth := in.MaterialWidthIn
	if materialWidth.IsZero() {
		materialWidth = decimal.NewFromInt(22)
	}

	horizontalFit := safeDiv(materialWidth, in.WidthIn)

	minimalLength := decimal.Zero
	if in.WidthIn.IsPositive() && materialWidth.IsPositive() {
		minimalLength = q.Mul(in.WidthIn.Div(materialWidth)).Mul(in.HeightIn.Div(twelve))
	}

	actualLength := decimal.Zero
	setupCost := decimal.Zero
	if qty > 0 {
		actualLength = minimalLength.Add(decimal.NewFromInt(1))
		setupCost = magnetSetupFee
	}

	materialCost := actualLength.Mul(in.PricePerFoot)
	totalCost := materialCost.Add(setupCost)
	pricePerMagnet := safeDiv(totalCost, q)

	return MagnetQuote{
		HorizontalFit:   horizontalFit.StringFixed(2),
		MinimalLengthFt: money(minimalLength),
		ActualLengthFt:  money(actualLength),
		MaterialCost:    money(materialCost),
		SetupCost:       money(setupCost),
		TotalCost:       money(totalCost),
		PricePerMagnet:  money(pricePerMagnet),
	}
}
