package pricing

import "github.com/shopspring/decimal"

// Sell-price preset tables for sign work. Non-preset materials sell at
// cost rounded up to the next whole dollar after a 4x markup.

type materialPreset struct {
	Label string
	Cost  decimal.Decimal
	Sell  decimal.Decimal
}

func preset(label string, cost, sell float64) materialPreset {
	return materialPreset{
		Label: label,
		Cost:  decimal.NewFromFloat(cost),
		Sell:  decimal.NewFromFloat(sell),
	}
}

var vinylPresets = map[string]materialPreset{
	"40c":              preset("40c", 3.00, 12.00),
	"ij180":            preset("IJ180 (Vehicle Wrap)", 6.10, 24.00),
	"briteline_im3223": preset("Briteline 6.0 IM3223", 1.70, 7.00),
	"window_perf":      preset("Window Perf", 3.80, 15.00),
	"oracal_651":       preset("Oracal 651", 1.50, 6.00),
	"textured_floor":   preset("Textured Floor Vinyl", 6.00, 24.00),
}

var laminatePresets = map[string]materialPreset{
	"8508":      preset("8508", 2.07, 9.00),
	"8518":      preset("8518", 4.60, 19.00),
	"dry_erase": preset("Dry Erase Lam", 1.75, 7.00),
}

var rigidPresets = map[string]materialPreset{
	"acm_3mm":   preset("3mm ACM", 1.75, 7.00),
	"acm_6mm":   preset("6mm ACM", 3.25, 13.00),
	"pvc_3mm":   preset("3mm PVC", 1.25, 5.00),
	"pvc_6mm":   preset("6mm PVC", 2.00, 8.00),
	"corro_4mm": preset("4mm Corro", 0.35, 1.50),
}

var laborRates = map[string]decimal.Decimal{
	"production":    decimal.NewFromInt(75),
	"hp_esko":       decimal.NewFromInt(125),
	"installations": decimal.NewFromInt(95),
	"art":           decimal.NewFromInt(75),
}

type bannerPreset struct {
	Label        string
	PricePerFoot decimal.Decimal
	MaxWidthIn   decimal.Decimal
}

var bannerPresets = map[string]bannerPreset{
	"13oz_54":     {Label: `13oz Vinyl (54")`, PricePerFoot: decimal.NewFromInt(20), MaxWidthIn: decimal.NewFromInt(50)},
	"13oz_96":     {Label: `13oz Vinyl (96")`, PricePerFoot: decimal.NewFromInt(30), MaxWidthIn: decimal.NewFromInt(92)},
	"8oz_mesh_63": {Label: `8oz Mesh (63")`, PricePerFoot: decimal.NewFromInt(30), MaxWidthIn: decimal.NewFromInt(60)},
}

var maskingPerFoot = decimal.NewFromFloat(2.50)

// sellFor returns the preset sell rate or, for custom materials, cost
// times four rounded up to the next dollar.
func sellFor(presets map[string]materialPreset, key string, cost decimal.Decimal) decimal.Decimal {
	if p, ok := presets[key]; ok {
		return p.Sell
	}
	return cost.Mul(decimal.NewFromInt(4)).Ceil()
}

// MaterialLine is one material row on a sign quote: a preset key (or ""
// for custom), the cost rate, and the footage or square footage used.
type MaterialLine struct {
	PresetKey string          `json:"presetKey"`
	CostRate  decimal.Decimal `json:"costRate"`
	Units     decimal.Decimal `json:"units"`
}

// LaborLine is one labor row: a preset key (or "" with an explicit rate)
// and hours.
type LaborLine struct {
	PresetKey string          `json:"presetKey"`
	Rate      decimal.Decimal `json:"rate"`
	Hours     decimal.Decimal `json:"hours"`
}

// BannerLine prices banner stock by the linear foot, gated on the
// material's maximum width.
type BannerLine struct {
	PresetKey  string          `json:"presetKey"`
	LengthFeet decimal.Decimal `json:"lengthFeet"`
	WidthIn    decimal.Decimal `json:"widthIn"`
}

// YardSignLine prices coroplast yard signs. When PricePerSign is zero the
// quantity-based suggestion applies.
type YardSignLine struct {
	DoubleSided  bool            `json:"doubleSided"`
	Quantity     int             `json:"quantity"`
	PricePerSign decimal.Decimal `json:"pricePerSign"`
}

// SignProjectInput is a full sign quote: any combination of vinyl,
// laminate, rigid substrate, masking, labor, banners, and yard signs.
type SignProjectInput struct {
	Vinyl       []MaterialLine  `json:"vinyl"`
	Laminate    []MaterialLine  `json:"laminate"`
	Rigid       []MaterialLine  `json:"rigid"`
	MaskingFeet decimal.Decimal `json:"maskingFeet"`
	Labor       []LaborLine     `json:"labor"`
	Banner      *BannerLine     `json:"banner,omitempty"`
	YardSigns   *YardSignLine   `json:"yardSigns,omitempty"`
}

type SignProjectQuote struct {
	VinylSubtotal    string `json:"vinylSubtotal"`
	LaminateSubtotal string `json:"laminateSubtotal"`
	RigidSubtotal    string `json:"rigidSubtotal"`
	MaskingSubtotal  string `json:"maskingSubtotal"`
	LaborSubtotal    string `json:"laborSubtotal"`
	BannerSubtotal   string `json:"bannerSubtotal"`
	YardSubtotal     string `json:"yardSubtotal"`
	ProjectTotal     string `json:"projectTotal"`
}

// SuggestYardPrice returns the going per-sign rate: large runs (51+) drop
// to 10/15 single/double, everything else quotes 20/25.
func SuggestYardPrice(doubleSided bool, qty int) decimal.Decimal {
	if qty >= 51 {
		if doubleSided {
			return decimal.NewFromInt(15)
		}
		return decimal.NewFromInt(10)
	}
	if doubleSided {
		return decimal.NewFromInt(25)
	}
	return decimal.NewFromInt(20)
}

// SignProject totals a sign quote across all its line groups.
func SignProject(in SignProjectInput) SignProjectQuote {
	sumMaterial := func(presets map[string]materialPreset, lines []MaterialLine) decimal.Decimal {
		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(sellFor(presets, line.PresetKey, line.CostRate).Mul(line.Units))
		}
		return total
	}

	vinyl := sumMaterial(vinylPresets, in.Vinyl)
	laminate := sumMaterial(laminatePresets, in.Laminate)
	rigid := sumMaterial(rigidPresets, in.Rigid)
	masking := maskingPerFoot.Mul(in.MaskingFeet)

	labor := decimal.Zero
	for _, line := range in.Labor {
		rate := line.Rate
		if preset, ok := laborRates[line.PresetKey]; ok {
			rate = preset
		}
		labor = labor.Add(rate.Mul(line.Hours))
	}

	banner := decimal.Zero
	if in.Banner != nil {
		if p, ok := bannerPresets[in.Banner.PresetKey]; ok &&
			in.Banner.WidthIn.LessThanOrEqual(p.MaxWidthIn) {
			banner = p.PricePerFoot.Mul(in.Banner.LengthFeet)
		}
	}

	yard := decimal.Zero
	if in.YardSigns != nil {
		qty := max(0, in.YardSigns.Quantity)
		price := in.YardSigns.PricePerSign
		if price.IsZero() {
			price = SuggestYardPrice(in.YardSigns.DoubleSided, qty)
		}
		yard = price.Mul(decimal.NewFromInt(int64(qty)))
	}

	total := vinyl.Add(laminate).Add(rigid).Add(masking).Add(labor).Add(banner).Add(yard)

	return SignProjectQuote{
		VinylSubtotal:    money(vinyl),
		LaminateSubtotal: money(laminate),
		RigidSubtotal:    money(rigid),
		MaskingSubtotal:  money(masking),
		LaborSubtotal:    money(labor),
		BannerSubtotal:   money(banner),
		YardSubtotal:     money(yard),
		ProjectTotal:     money(total),
	}
}
