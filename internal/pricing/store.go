package pricing

import "github.com/shopspring/decimal"

// StorePricingInput computes an online-store listing price from the base
// garment price, up to five royalty rates, and an additional markup rate.
// Rates are decimals (0.08 = 8%), not percentages.
type StorePricingInput struct {
	BasePrice decimal.Decimal   `json:"basePrice"`
	Royalties []decimal.Decimal `json:"royalties"`
	Markup    decimal.Decimal   `json:"markup"`
}

type StorePricingQuote struct {
	RoyaltyTotal          string `json:"royaltyTotal"`
	StorePrice            string `json:"storePrice"`
	RevenueAfterRoyalties string `json:"revenueAfterRoyalties"`
	ExtraAmount           string `json:"extraAmount"`
}

// StorePricing computes the listing price and what the shop keeps after
// the platform takes its royalties back out of it.
func StorePricing(in StorePricingInput) StorePricingQuote {
	royaltyTotal := decimal.Zero
	for _, r := range in.Royalties {
		royaltyTotal = royaltyTotal.Add(r)
	}

	one := decimal.NewFromInt(1)
	storePrice := in.BasePrice.Mul(one.Add(royaltyTotal).Add(in.Markup))
	revenue := storePrice.Mul(one.Sub(royaltyTotal))
	extra := revenue.Sub(in.BasePrice)

	return StorePricingQuote{
		RoyaltyTotal:          royaltyTotal.StringFixed(6),
		StorePrice:            storePrice.StringFixed(4),
		RevenueAfterRoyalties: revenue.StringFixed(4),
		ExtraAmount:           extra.StringFixed(4),
	}
}
