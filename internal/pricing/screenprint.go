package pricing

import "github.com/shopspring/decimal"

// Ink price per shirt by color count. The second table covers print
// locations 2 through 6; both currently run $1.00 for one color plus $0.35
// per additional color, capped at 8 colors.
var (
	inkPriceLocation1 = inkTable()
	inkPriceLocation2 = inkTable()
)

func inkTable() map[int]decimal.Decimal {
	base := decimal.NewFromInt(1)
	step := decimal.NewFromFloat(0.35)
	table := make(map[int]decimal.Decimal, 8)
	for colors := 1; colors <= 8; colors++ {
		table[colors] = base.Add(step.Mul(decimal.NewFromInt(int64(colors - 1))))
	}
	return table
}

// screenChargePerColor is the per-screen burn charge.
var screenChargePerColor = decimal.NewFromInt(30)

// dozenCostMarkup converts a vendor dozen-cost into the per-shirt sell
// price for shop-supplied garments.
var dozenCostMarkup = decimal.NewFromFloat(1.67)

// ScreenprintInput describes one screenprint job. DozenCost only applies
// when the shop supplies the garments; customer-supplied jobs price the
// printing alone.
type ScreenprintInput struct {
	Shirts            int             `json:"shirts"`
	DozenCost         decimal.Decimal `json:"dozenCost"`
	Location1Colors   int             `json:"location1Colors"`
	Location2Colors   int             `json:"location2Colors"`
	ArtFilmCharges    decimal.Decimal `json:"artFilmCharges"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	RoyaltyPercent    decimal.Decimal `json:"royaltyPercent"`
	CustomerSupplied  bool            `json:"customerSupplied"`
}

// ScreenprintQuote is the per-job breakdown, all amounts as two-decimal
// strings.
type ScreenprintQuote struct {
	InkPerShirt       string `json:"inkPerShirt"`
	InkCosts          string `json:"inkCosts"`
	ScreenCharges     string `json:"screenCharges"`
	ArtFilmCharges    string `json:"artFilmCharges"`
	AdditionalCharges string `json:"additionalCharges"`
	TotalCharges      string `json:"totalCharges"`
	ArtProdPerShirt   string `json:"artProdPerShirt"`
	ShirtCostPerShirt string `json:"shirtCostPerShirt"`
	RoyaltyAmount     string `json:"royaltyAmount"`
	RoyaltyPerShirt   string `json:"royaltyPerShirt"`
	PricePerShirt     string `json:"pricePerShirt"`
	Total             string `json:"total"`
}

// Screenprint prices a screenprint job. Color counts clamp to the 0-8
// range the ink table covers.
func Screenprint(in ScreenprintInput) ScreenprintQuote {
	shirts := decimal.NewFromInt(int64(max(0, in.Shirts)))
	loc1 := clampInt(in.Location1Colors, 0, 8)
	loc2 := clampInt(in.Location2Colors, 0, 8)

	inkPerShirt := inkPriceLocation1[loc1].Add(inkPriceLocation2[loc2])
	inkCosts := shirts.Mul(inkPerShirt)

	totalColors := decimal.NewFromInt(int64(loc1 + loc2))
	screenCharges := totalColors.Mul(screenChargePerColor)

	shirtCostPerShirt := decimal.Zero
	if !in.CustomerSupplied && in.DozenCost.IsPositive() {
		shirtCostPerShirt = in.DozenCost.Mul(dozenCostMarkup)
	}

	totalCharges := inkCosts.Add(screenCharges).Add(in.ArtFilmCharges).Add(in.AdditionalCharges)
	artProdPerShirt := safeDiv(totalCharges, shirts)

	royaltyAmount := totalCharges.Mul(in.RoyaltyPercent).Div(hundred)
	royaltyPerShirt := safeDiv(royaltyAmount, shirts)

	pricePerShirt := shirtCostPerShirt.Add(artProdPerShirt).Add(royaltyPerShirt)
	total := shirts.Mul(pricePerShirt)

	return ScreenprintQuote{
		InkPerShirt:       money(inkPerShirt),
		InkCosts:          money(inkCosts),
		ScreenCharges:     money(screenCharges),
		ArtFilmCharges:    money(in.ArtFilmCharges),
		AdditionalCharges: money(in.AdditionalCharges),
		TotalCharges:      money(totalCharges),
		ArtProdPerShirt:   money(artProdPerShirt),
		ShirtCostPerShirt: money(shirtCostPerShirt),
		RoyaltyAmount:     money(royaltyAmount),
		RoyaltyPerShirt:   money(royaltyPerShirt),
		PricePerShirt:     money(pricePerShirt),
		Total:             money(total),
	}
}
