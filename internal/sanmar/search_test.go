package sanmar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freckles-ink/printdesk/internal/sanmar"
)

func TestParseSearchResults_SlugExtraction(t *testing.T) {
	resp := sanmar.SearchResponse{
		Results: []sanmar.SearchResult{
			{
				Code:             "PC61",
				Name:             "Essential Tee",
				StyleNumber:      "PC61",
				DisplayPriceText: "$4.99",
				URL:              "https://www.sanmar.com/p/port-company-essential-tee-pc61?color=Black#reviews",
			},
			{
				Code:   "K500",
				Name:   "Silk Touch Polo",
				Style:  "K500",
				PdpURL: "/p/port-authority-silk-touch-k500/details/extra",
			},
			{
				Code: "NOURL",
				Name: "No product page",
			},
		},
	}

	products := sanmar.ParseSearchResults(resp)

	require.Len(t, products, 3)

	assert.Equal(t, "port-company-essential-tee-pc61", products[0].Slug)
	assert.Equal(t, "PC61", products[0].StyleNumber)
	assert.Equal(t, "$4.99", products[0].PriceText)

	// Trailing path segments are not part of the slug.
	assert.Equal(t, "port-authority-silk-touch-k500", products[1].Slug)
	assert.Equal(t, "K500", products[1].StyleNumber)

	// Without a product URL the code stands in for the slug.
	assert.Equal(t, "NOURL", products[2].Slug)
	assert.Equal(t, "https://www.sanmar.com/p/NOURL", products[2].URL)
}

func TestParseSearchResults_ProductsKey(t *testing.T) {
	resp := sanmar.SearchResponse{
		Products: []sanmar.SearchResult{
			{Code: "PC61", URL: "https://www.sanmar.com/p/pc61-tee"},
		},
	}

	products := sanmar.ParseSearchResults(resp)

	require.Len(t, products, 1)
	assert.Equal(t, "pc61-tee", products[0].Slug)
	// styleNumber falls back to code when the result omits it.
	assert.Equal(t, "PC61", products[0].StyleNumber)
}

func TestParseSearchResults_PriceFallbacks(t *testing.T) {
	resp := sanmar.SearchResponse{
		Results: []sanmar.SearchResult{
			{Code: "A", SalePriceText: "$3.99"},
			{Code: "B", OriginalPriceText: "$5.99"},
		},
	}

	products := sanmar.ParseSearchResults(resp)

	require.Len(t, products, 2)
	assert.Equal(t, "$3.99", products[0].PriceText)
	assert.Equal(t, "$5.99", products[1].PriceText)
}

func TestParseSearchResults_Empty(t *testing.T) {
	products := sanmar.ParseSearchResults(sanmar.SearchResponse{})

	assert.Empty(t, products)
}
