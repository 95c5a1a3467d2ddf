package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freckles-ink/printdesk/internal/pricing"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestScreenprint_ShopSupplied(t *testing.T) {
	quote := pricing.Screenprint(pricing.ScreenprintInput{
		Shirts:          24,
		DozenCost:       dec(2),
		Location1Colors: 2,
		ArtFilmCharges:  dec(10),
		RoyaltyPercent:  dec(10),
	})

	assert.Equal(t, "1.35", quote.InkPerShirt)
	assert.Equal(t, "32.40", quote.InkCosts)
	assert.Equal(t, "60.00", quote.ScreenCharges)
	assert.Equal(t, "102.40", quote.TotalCharges)
	assert.Equal(t, "3.34", quote.ShirtCostPerShirt)
	assert.Equal(t, "10.24", quote.RoyaltyAmount)
	assert.Equal(t, "8.03", quote.PricePerShirt)
	assert.Equal(t, "192.80", quote.Total)
}

func TestScreenprint_CustomerSuppliedOmitsGarment(t *testing.T) {
	in := pricing.ScreenprintInput{
		Shirts:          24,
		DozenCost:       dec(2),
		Location1Colors: 1,
	}

	shop := pricing.Screenprint(in)
	in.CustomerSupplied = true
	customer := pricing.Screenprint(in)

	assert.Equal(t, "3.34", shop.ShirtCostPerShirt)
	assert.Equal(t, "0.00", customer.ShirtCostPerShirt)
	assert.Equal(t, shop.TotalCharges, customer.TotalCharges)
}

func TestScreenprint_ColorCountsClamp(t *testing.T) {
	quote := pricing.Screenprint(pricing.ScreenprintInput{
		Shirts:          12,
		Location1Colors: 99,
		Location2Colors: -3,
	})

	// 8-color ink rate at location 1, nothing at location 2.
	assert.Equal(t, "3.45", quote.InkPerShirt)
	assert.Equal(t, "240.00", quote.ScreenCharges)
}

func TestScreenprint_ZeroShirts(t *testing.T) {
	quote := pricing.Screenprint(pricing.ScreenprintInput{
		Location1Colors: 1,
		ArtFilmCharges:  dec(50),
	})

	assert.Equal(t, "0.00", quote.ArtProdPerShirt)
	assert.Equal(t, "0.00", quote.Total)
}

func TestEmbroidery_WorkedExample(t *testing.T) {
	// Garment $21.99, $75/h for 0.1964h, stitches 8000/10000/1165.
	quote := pricing.Embroidery(pricing.EmbroideryInput{
		GarmentCost: dec(21.99),
		HourlyRate:  dec(75),
		ArtHours:    dec(0.1964),
		Stitches:    []int{8000, 10000, 1165},
	})

	assert.Equal(t, "14.73", quote.ArtFee)
	require.Len(t, quote.LocationCosts, 3)
	assert.Equal(t, "7.00", quote.LocationCosts[0])
	assert.Equal(t, "9.00", quote.LocationCosts[1])
	assert.Equal(t, "7.00", quote.LocationCosts[2])
	assert.Equal(t, "23.00", quote.TotalEmbroidery)
	assert.Equal(t, "59.72", quote.TotalPrice)
}

func TestEmbroidery_ZeroStitchLocationIsFree(t *testing.T) {
	quote := pricing.Embroidery(pricing.EmbroideryInput{
		GarmentCost: dec(10),
		Stitches:    []int{0, 9000},
	})

	assert.Equal(t, "0.00", quote.LocationCosts[0])
	assert.Equal(t, "8.00", quote.LocationCosts[1])
	assert.Equal(t, "18.00", quote.TotalPrice)
}

func TestStickers(t *testing.T) {
	quote, err := pricing.Stickers(pricing.StickerInput{
		HeightIn:     dec(3),
		WidthIn:      dec(4),
		Quantity:     100,
		PricePerFoot: dec(20),
		Cutting:      true,
		Weeding:      dec(5),
	})

	require.NoError(t, err)
	assert.Equal(t, 13, quote.HorizontalMax)
	assert.Equal(t, "25.18", quote.MaterialLengthFt)
	assert.Equal(t, "503.64", quote.BaseMaterialCost)
	assert.Equal(t, "10.00", quote.CuttingCost)
	assert.Equal(t, "5.00", quote.WeedingCost)
	assert.Equal(t, "618.64", quote.TotalCost)
	assert.Equal(t, "6.19", quote.PricePerSticker)
}

func TestStickers_WidthLimit(t *testing.T) {
	_, err := pricing.Stickers(pricing.StickerInput{
		HeightIn: dec(3),
		WidthIn:  dec(26),
		Quantity: 10,
	})

	assert.ErrorIs(t, err, pricing.ErrInvalidDimensions)
}

func TestStickers_RejectsNonPositiveInputs(t *testing.T) {
	_, err := pricing.Stickers(pricing.StickerInput{
		HeightIn: dec(0),
		WidthIn:  dec(4),
		Quantity: 10,
	})

	assert.ErrorIs(t, err, pricing.ErrInvalidDimensions)
}

func TestMagnets(t *testing.T) {
	quote := pricing.Magnets(pricing.MagnetInput{
		HeightIn:        dec(3.5),
		WidthIn:         dec(3),
		Quantity:        500,
		PricePerFoot:    dec(20),
		MaterialWidthIn: dec(22),
	})

	assert.Equal(t, "19.89", quote.MinimalLengthFt)
	assert.Equal(t, "20.89", quote.ActualLengthFt)
	assert.Equal(t, "417.73", quote.MaterialCost)
	assert.Equal(t, "100.00", quote.SetupCost)
	assert.Equal(t, "517.73", quote.TotalCost)
	assert.Equal(t, "1.04", quote.PricePerMagnet)
}

func TestMagnets_ZeroQuantity(t *testing.T) {
	quote := pricing.Magnets(pricing.MagnetInput{
		HeightIn:     dec(3),
		WidthIn:      dec(3),
		PricePerFoot: dec(20),
	})

	assert.Equal(t, "0.00", quote.ActualLengthFt)
	assert.Equal(t, "0.00", quote.SetupCost)
	assert.Equal(t, "0.00", quote.TotalCost)
}

func TestPatches(t *testing.T) {
	quote, err := pricing.Patches(pricing.PatchInput{
		Quantity:      24,
		PatchType:     "leather",
		IncludeHeat:   true,
		MarkupPercent: dec(20),
	})

	require.NoError(t, err)
	assert.Equal(t, "10.00", quote.BasePerPatch)
	assert.Equal(t, "13.00", quote.UnitPatchPrice)
	assert.Equal(t, "312.00", quote.PatchesSubtotal)
	assert.Equal(t, "62.40", quote.MarkupAmount)
	assert.Equal(t, "374.40", quote.GrandTotal)
	assert.Equal(t, "15.60", quote.PricePerItem)
}

func TestPatches_ArtOptions(t *testing.T) {
	base := pricing.PatchInput{Quantity: 1, PatchType: "faux"}

	base.ArtOption = pricing.ArtNew
	base.ArtHours = dec(2)
	quote, err := pricing.Patches(base)
	require.NoError(t, err)
	assert.Equal(t, "150.00", quote.ArtFee)

	base.ArtOption = pricing.ArtVectorChanges
	quote, err = pricing.Patches(base)
	require.NoError(t, err)
	assert.Equal(t, "50.00", quote.ArtFee)

	base.ArtOption = pricing.ArtVectorNoChange
	quote, err = pricing.Patches(base)
	require.NoError(t, err)
	assert.Equal(t, "25.00", quote.ArtFee)
}

func TestPatches_UnknownType(t *testing.T) {
	_, err := pricing.Patches(pricing.PatchInput{Quantity: 1, PatchType: "velvet"})

	assert.ErrorIs(t, err, pricing.ErrUnknownPreset)
}

func TestSignProject(t *testing.T) {
	quote := pricing.SignProject(pricing.SignProjectInput{
		Vinyl: []pricing.MaterialLine{
			// 12.00/ft preset sell, then a custom rate: ceil(2.30*4) = 10/ft.
			{PresetKey: "40c", Units: dec(10)},
			{CostRate: dec(2.30), Units: dec(5)},
		},
		Laminate: []pricing.MaterialLine{
			{PresetKey: "8508", Units: dec(10)}, // 9.00/ft
		},
		Rigid: []pricing.MaterialLine{
			{PresetKey: "acm_3mm", Units: dec(10)}, // 7.00/sqft
		},
		MaskingFeet: dec(4),
		Labor: []pricing.LaborLine{
			{PresetKey: "production", Hours: dec(2)}, // 75/h
		},
		Banner: &pricing.BannerLine{
			PresetKey:  "13oz_54",
			LengthFeet: dec(10),
			WidthIn:    dec(48),
		},
		YardSigns: &pricing.YardSignLine{
			DoubleSided: true,
			Quantity:    60,
		},
	})

	assert.Equal(t, "170.00", quote.VinylSubtotal)
	assert.Equal(t, "90.00", quote.LaminateSubtotal)
	assert.Equal(t, "70.00", quote.RigidSubtotal)
	assert.Equal(t, "10.00", quote.MaskingSubtotal)
	assert.Equal(t, "150.00", quote.LaborSubtotal)
	assert.Equal(t, "200.00", quote.BannerSubtotal)
	assert.Equal(t, "900.00", quote.YardSubtotal)
	assert.Equal(t, "1590.00", quote.ProjectTotal)
}

func TestSignProject_BannerWidthGate(t *testing.T) {
	quote := pricing.SignProject(pricing.SignProjectInput{
		Banner: &pricing.BannerLine{
			PresetKey:  "13oz_54",
			LengthFeet: dec(10),
			WidthIn:    dec(60), // over the 50" max for this stock
		},
	})

	assert.Equal(t, "0.00", quote.BannerSubtotal)
}

func TestSuggestYardPrice(t *testing.T) {
	assert.Equal(t, "20", pricing.SuggestYardPrice(false, 10).String())
	assert.Equal(t, "25", pricing.SuggestYardPrice(true, 50).String())
	assert.Equal(t, "10", pricing.SuggestYardPrice(false, 51).String())
	assert.Equal(t, "15", pricing.SuggestYardPrice(true, 200).String())
}

func TestStorePricing_WorkedExample(t *testing.T) {
	// Base 16.82, single 8% royalty, markup rate 0.074074.
	quote := pricing.StorePricing(pricing.StorePricingInput{
		BasePrice: dec(16.82),
		Royalties: []decimal.Decimal{dec(0.08), dec(0), dec(0), dec(0), dec(0)},
		Markup:    dec(0.074074),
	})

	assert.Equal(t, "0.080000", quote.RoyaltyTotal)
	assert.Equal(t, "19.4115", quote.StorePrice)
	assert.Equal(t, "17.8586", quote.RevenueAfterRoyalties)
	assert.Equal(t, "1.0386", quote.ExtraAmount)
}
