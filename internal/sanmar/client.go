package sanmar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clbanning/mxj/v2"

	"github.com/freckles-ink/printdesk/internal/domain"
	"github.com/freckles-ink/printdesk/internal/inventory"
)

// Config holds the vendor endpoints and credentials.
type Config struct {
	// BaseURL is the storefront origin for the REST endpoints.
	BaseURL string

	// StandardEndpoint is the legacy WebServicePort SOAP binding.
	StandardEndpoint string

	// PromoStandardsEndpoint is the PromoStandards Inventory 2.0.0 binding.
	PromoStandardsEndpoint string

	CustomerNumber string
	Username       string
	Password       string

	// Cookie, when set, is forwarded on REST calls. The storefront rejects
	// some anonymous sessions; a captured browser cookie keeps those working.
	Cookie string

	Timeout time.Duration
}

// Client calls the vendor's REST and SOAP surfaces. It satisfies
// inventory.VendorClient.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

var _ inventory.VendorClient = (*Client)(nil)

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// restHeaders mimics the storefront's own browser traffic; the REST
// endpoints refuse requests that look like scripted clients.
func (c *Client) restHeaders(referer string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126 Safari/537.36")
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Origin", c.cfg.BaseURL)
	h.Set("Content-Type", "application/json;charset=UTF-8")
	h.Set("Referer", referer)
	if c.cfg.Cookie != "" {
		h.Set("Cookie", c.cfg.Cookie)
	}
	return h
}

// Search runs a catalog search and returns the decoded vendor payload.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	params = params.withDefaults()

	body, err := json.Marshal(searchRequest{
		Text:        params.Query,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		Sort:        params.Sort,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/search/findProducts.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = c.restHeaders(c.cfg.BaseURL + "/search/?text=" + url.QueryEscape(params.Query))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: unexpected status %d", resp.StatusCode)
	}

	var decoded SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &decoded, nil
}

// SearchProducts implements the orchestrator's search step.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	resp, err := c.Search(ctx, SearchParams{Query: query, PageSize: 10})
	if err != nil {
		return nil, err
	}
	return ParseSearchResults(*resp), nil
}

// InventoryBySlug fetches inventory from the storefront's inventory
// endpoint, falling back to the product detail endpoint when the primary
// call fails or returns an unusable shape — detail pages carry a reduced
// inventory block that is better than nothing.
func (c *Client) InventoryBySlug(ctx context.Context, slug string) (domain.InventoryResponse, error) {
	body, err := c.restGet(ctx, "/api/inventory/"+slug, c.cfg.BaseURL+"/p/"+slug)
	if err == nil {
		resp := inventory.ParseWebJSON(body)
		if !resp.Error || resp.Message == "No inventory data found" {
			return resp, nil
		}
		c.logger.Debug("inventory endpoint returned unusable shape, trying detail",
			"slug", slug, "message", resp.Message)
	} else {
		c.logger.Debug("inventory endpoint failed, trying detail", "slug", slug, "error", err)
	}

	detailBody, detailErr := c.restGet(ctx, "/api/products/"+slug, c.cfg.BaseURL+"/p/"+slug)
	if detailErr != nil {
		if err != nil {
			return domain.InventoryResponse{}, fmt.Errorf("inventory fetch failed: %w", err)
		}
		return domain.InventoryResponse{}, fmt.Errorf("detail fetch failed: %w", detailErr)
	}
	return inventory.ParseProductDetail(detailBody), nil
}

func (c *Client) restGet(ctx context.Context, path, referer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header = c.restHeaders(referer)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// StandardInventory implements the orchestrator's first step against the
// legacy WebServicePort service.
func (c *Client) StandardInventory(ctx context.Context, q inventory.Query) (domain.InventoryResponse, error) {
	envelope := standardEnvelope(
		c.cfg.CustomerNumber, c.cfg.Username, c.cfg.Password,
		q.Style, q.Color, q.Size, "", false,
	)
	action := standardSOAPAction(standardMethod(false))

	doc, err := c.postSOAP(ctx, c.cfg.StandardEndpoint, action, envelope)
	if err != nil {
		return domain.InventoryResponse{}, err
	}
	return inventory.ParseStandardInventory(doc), nil
}

// PromoStandardsInventory implements the orchestrator's second step,
// optionally filtered to the query's color and size.
func (c *Client) PromoStandardsInventory(ctx context.Context, q inventory.Query) (domain.InventoryResponse, error) {
	var labelSizes, partColors []string
	if q.Size != "" {
		labelSizes = []string{q.Size}
	}
	if q.Color != "" {
		partColors = []string{q.Color}
	}
	envelope := promoStandardsEnvelope(c.cfg.Username, c.cfg.Password, q.Style, labelSizes, partColors, nil)

	doc, err := c.postSOAP(ctx, c.cfg.PromoStandardsEndpoint, "", envelope)
	if err != nil {
		return domain.InventoryResponse{}, err
	}
	return inventory.ParsePromoStandards(doc), nil
}

// postSOAP sends an envelope and decodes the XML response into a map tree.
// The body is decoded even on non-200 statuses: SOAP faults ride on 500s
// and the parsers turn them into structured errors.
func (c *Client) postSOAP(ctx context.Context, endpoint, action, envelope string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(envelope))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml, application/xml, */*;q=0.1")
	if action != "" {
		req.Header.Set("SOAPAction", action)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("soap request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read soap response: %w", err)
	}

	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("decode soap response (status %d): %w", resp.StatusCode, err)
	}
	return map[string]any(m), nil
}
