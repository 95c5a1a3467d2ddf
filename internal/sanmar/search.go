package sanmar

import (
	"strings"

	"github.com/freckles-ink/printdesk/internal/domain"
)

// SearchParams drives a catalog search. Zero-value Page is the first page;
// PageSize and Sort fall back to the site's defaults.
type SearchParams struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Sort     string `json:"sort"`
}

func (p SearchParams) withDefaults() SearchParams {
	if p.PageSize == 0 {
		p.PageSize = 24
	}
	if p.Sort == "" {
		p.Sort = "relevance"
	}
	return p
}

// searchRequest is the wire body for the vendor's findProducts endpoint.
type searchRequest struct {
	Text        string `json:"text"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	Sort        string `json:"sort"`
}

// SearchResponse mirrors the vendor's search payload. The result list has
// shipped under both "results" and "products" keys; both are accepted.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Products   []SearchResult `json:"products"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
}

type SearchResult struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	DisplayPriceText  string `json:"displayPriceText"`
	SalePriceText     string `json:"salePriceText"`
	OriginalPriceText string `json:"originalPriceText"`
	StyleNumber       string `json:"styleNumber"`
	Style             string `json:"style"`
	URL               string `json:"url"`
	PdpURL            string `json:"pdpUrl"`
	ImageURL          string `json:"imageUrl"`
	ThumbnailURL      string `json:"thumbnailUrl"`
}

// ParseSearchResults flattens the vendor's search payload into catalog
// products, extracting each product's slug from its page URL.
func ParseSearchResults(resp SearchResponse) []domain.Product {
	items := resp.Results
	if len(items) == 0 {
		items = resp.Products
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		styleNumber := item.StyleNumber
		if styleNumber == "" {
			styleNumber = item.Style
		}
		if styleNumber == "" {
			styleNumber = item.Code
		}
		price := item.DisplayPriceText
		if price == "" {
			price = item.SalePriceText
		}
		if price == "" {
			price = item.OriginalPriceText
		}
		pageURL := item.URL
		if pageURL == "" {
			pageURL = item.PdpURL
		}
		slug := slugFromURL(pageURL)
		if slug == "" {
			slug = item.Code
		}
		imageURL := item.ImageURL
		if imageURL == "" {
			imageURL = item.ThumbnailURL
		}
		if pageURL == "" {
			pageURL = "https://www.sanmar.com/p/" + slug
		}

		products = append(products, domain.Product{
			Slug:        slug,
			Code:        item.Code,
			StyleNumber: styleNumber,
			Name:        item.Name,
			PriceText:   price,
			ImageURL:    imageURL,
			URL:         pageURL,
		})
	}
	return products
}

// slugFromURL pulls the product slug out of a "/p/" page URL, dropping any
// trailing path segments, query string, or fragment. Returns "" when the
// URL has no product path.
func slugFromURL(u string) string {
	_, after, found := strings.Cut(u, "/p/")
	if !found {
		return ""
	}
	if i := strings.IndexAny(after, "/?#"); i >= 0 {
		after = after[:i]
	}
	return after
}
