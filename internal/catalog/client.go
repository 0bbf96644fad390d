// Package catalog is the HTTP client for the remote product catalog.
// The catalog is an opaque collaborator: responses are stored verbatim.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/okhotnikov/storefront/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient bounds every catalog call with timeout; expired calls reach
// the caller as errors and become rejected task transitions.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Products lists the catalog, optionally narrowed to one category.
func (c *Client) Products(ctx context.Context, category string) ([]models.Product, error) {
	path := "/products"
	if category != "" {
		path = "/products/category/" + url.PathEscape(category)
	}

	var products []models.Product
	if err := c.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories lists the catalog's category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.getJSON(ctx, "/products/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
