package pricing

import "github.com/shopspring/decimal"

var (
	stickerSetupFee   = decimal.NewFromInt(100)
	stickerRollWidth  = decimal.NewFromInt(52)
	stickerHalfRoll   = decimal.NewFromInt(26)
	stickerCutPerUnit = decimal.NewFromFloat(0.10)
)

// StickerInput describes a sticker/decal run on the 52" roll. Width must
// stay under the 26" half-roll; the nesting formula divides by the
// remaining width.
type StickerInput struct {
	HeightIn     decimal.Decimal `json:"height"`
	WidthIn      decimal.Decimal `json:"width"`
	Quantity     int             `json:"quantity"`
	PricePerFoot decimal.Decimal `json:"pricePerFoot"`
	Lamination   bool            `json:"lamination"`
	Cutting      bool            `json:"cutting"`
	Weeding      decimal.Decimal `json:"weedingCharge"`
}

type StickerQuote struct {
	HorizontalMax    int    `json:"horizontalMax"`
	MaterialLengthFt string `json:"materialLength"`
	BaseMaterialCost string `json:"baseMaterialCost"`
	LaminationCost   string `json:"laminationCost"`
	CuttingCost      string `json:"cuttingCost"`
	WeedingCost      string `json:"weedingCost"`
	SetupFee         string `json:"setupFee"`
	TotalCost        string `json:"totalCost"`
	PricePerSticker  string `json:"pricePerSticker"`
}

// Stickers prices a sticker run. Returns ErrInvalidDimensions when height,
// width, or quantity is non-positive, or when width reaches the 26"
// half-roll limit.
func Stickers(in StickerInput) (StickerQuote, error) {
	if !in.HeightIn.IsPositive() || !in.WidthIn.IsPositive() || in.Quantity <= 0 ||
		in.WidthIn.GreaterThanOrEqual(stickerHalfRoll) {
		return StickerQuote{}, ErrInvalidDimensions
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	denominator := stickerHalfRoll.Sub(in.WidthIn)

	// feet of material: stacked height plus the edge allowance from nesting
	materialLength := in.HeightIn.Mul(qty).Div(twelve).Add(in.WidthIn.Div(denominator))

	baseMaterialCost := in.PricePerFoot.Mul(materialLength)

	laminationCost := decimal.Zero
	if in.Lamination {
		addPerFoot := stickerRollWidth.Sub(in.HeightIn).
			Add(in.HeightIn.Add(in.WidthIn).Div(denominator))
		laminationCost = addPerFoot.Mul(materialLength)
	}

	cuttingCost := decimal.Zero
	if in.Cutting {
		cuttingCost = qty.Mul(stickerCutPerUnit)
	}

	weedingCost := in.Weeding
	if weedingCost.IsNegative() {
		weedingCost = decimal.Zero
	}

	totalCost := stickerSetupFee.Add(baseMaterialCost).Add(laminationCost).Add(cuttingCost).Add(weedingCost)
	pricePerSticker := totalCost.Div(qty)

	horizontalMax := int(stickerRollWidth.Div(in.WidthIn).Floor().IntPart())

	return StickerQuote{
		HorizontalMax:    horizontalMax,
		MaterialLengthFt: money(materialLength),
		BaseMaterialCost: money(baseMaterialCost),
		LaminationCost:   money(laminationCost),
		CuttingCost:      money(cuttingCost),
		WeedingCost:      money(weedingCost),
		SetupFee:         money(stickerSetupFee),
		TotalCost:        money(totalCost),
		PricePerSticker:  money(pricePerSticker),
	}, nil
}
