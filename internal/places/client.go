// Package places is a thin JSON client for the external mapping/places API.
// Responses are cached in-process so repeated lookups for the same identifier
// within the TTL never leave the process.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/config"
	"github.com/dentradar/dentradar-api/pkg/metrics"
)

const detailsFields = "place_id,name,formatted_address,formatted_phone_number," +
	"international_phone_number,website,rating,user_ratings_total,business_status," +
	"types,geometry,photos,opening_hours"

type Client struct {
	apiKey       string
	baseURL      string
	photoMaxWide int
	httpClient   *http.Client
	cache        *cache.Cache
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

func NewClient(cfg config.PlacesConfig, logger zerolog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		photoMaxWide: cfg.PhotoMaxWide,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		cache:        cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:       logger,
		metrics:      m,
	}
}

// Configured reports whether an API key is present. Callers degrade to no-ops
// when it is not, rather than failing the request.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	cacheKey := endpoint + "?" + params.Encode()
	if cached, ok := c.cache.Get(cacheKey); ok {
		c.metrics.PlacesCacheHits.Inc()
		return json.Unmarshal(cached.([]byte), out)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.PlacesRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.PlacesLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		c.metrics.PlacesRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("places request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read places response: %w", err)
	}

	c.metrics.PlacesRequests.WithLabelValues(endpoint, "success").Inc()
	c.cache.SetDefault(cacheKey, body)

	return json.Unmarshal(body, out)
}

// TextSearch runs a free-text place search and returns the first result page.
func (c *Client) TextSearch(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, "/place/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places search returned status %s", resp.Status)
	}
	return resp.Results, nil
}

// Details fetches the full place record for a place id.
func (c *Client) Details(ctx context.Context, placeID string) (*Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var resp detailsResponse
	if err := c.get(ctx, "/place/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("place details returned status %s", resp.Status)
	}
	return &resp.Result, nil
}

// Autocomplete returns locality predictions for the input, optionally
// constrained to a country component.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "(regions)")
	params.Set("components", "country:us")

	var resp autocompleteResponse
	if err := c.get(ctx, "/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places autocomplete returned status %s", resp.Status)
	}
	return resp.Predictions, nil
}

// Geocode resolves a free-text address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode returned status %s", resp.Status)
	}

	r := resp.Results[0]
	return &GeocodeResult{
		Address: r.FormattedAddress,
		Lat:     r.Geometry.Location.Lat,
		Lng:     r.Geometry.Location.Lng,
	}, nil
}

// PhotoURL converts a photo reference into a fetchable URL.
func (c *Client) PhotoURL(ref string) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprintf("%d", c.photoMaxWide))
	params.Set("photo_reference", ref)
	params.Set("key", c.apiKey)
	return c.baseURL + "/place/photo?" + params.Encode()
}
