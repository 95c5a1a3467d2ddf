package pricing

import "github.com/shopspring/decimal"

var (
	embroideryMinimum    = decimal.NewFromInt(7)
	embroideryPerKStitch = decimal.NewFromFloat(0.875)
	thousand             = decimal.NewFromInt(1000)
)

// EmbroideryInput describes an embroidery job with up to several stitch
// locations. A location with zero stitches costs nothing.
type EmbroideryInput struct {
	GarmentCost decimal.Decimal `json:"garmentCost"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	ArtHours    decimal.Decimal `json:"artHours"`
	Stitches    []int           `json:"stitches"`
}

type EmbroideryQuote struct {
	ArtFee          string   `json:"artFee"`
	LocationCosts   []string `json:"locationCosts"`
	TotalEmbroidery string   `json:"totalEmbroidery"`
	TotalPrice      string   `json:"totalPrice"`
}

// embroideryCostFor prices one location: $0.875 per thousand stitches,
// rounded up to whole dollars, with a $7 floor.
func embroideryCostFor(stitches int) decimal.Decimal {
	if stitches <= 0 {
		return decimal.Zero
	}
	variable := decimal.NewFromInt(int64(stitches)).Div(thousand).Mul(embroideryPerKStitch).Ceil()
	if variable.LessThan(embroideryMinimum) {
		return embroideryMinimum
	}
	return variable
}

// Embroidery prices a job: garment + art fee + the sum of per-location
// embroidery costs.
func Embroidery(in EmbroideryInput) EmbroideryQuote {
	artFee := in.HourlyRate.Mul(in.ArtHours)

	totalEmbroidery := decimal.Zero
	locationCosts := make([]string, 0, len(in.Stitches))
	for _, stitches := range in.Stitches {
		cost := embroideryCostFor(stitches)
		totalEmbroidery = totalEmbroidery.Add(cost)
		locationCosts = append(locationCosts, money(cost))
	}

	total := in.GarmentCost.Add(artFee).Add(totalEmbroidery)

	return EmbroideryQuote{
		ArtFee:          money(artFee),
		LocationCosts:   locationCosts,
		TotalEmbroidery: money(totalEmbroidery),
		TotalPrice:      money(total),
	}
}
