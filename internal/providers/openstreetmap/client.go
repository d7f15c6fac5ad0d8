package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"local-guide/internal/ratelimit"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Overview/
// Sample requests:
// - https://nominatim.openstreetmap.org/reverse?lat=40.71&lon=-74.00&format=json
// - https://nominatim.openstreetmap.org/search?q=Lisbon&format=json&addressdetails=1&limit=5
//
// The public instance allows at most one request per second and requires an
// identifying User-Agent.
const (
	baseURL = "https://nominatim.openstreetmap.org"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

func NewClient(userAgent string, requestsPerSecond float64, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    ratelimit.New(requestsPerSecond),
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Lookup reverse geocodes the given coordinates
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*LookupAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")

	var apiResp LookupAPIResponse
	if err := c.get(ctx, "/reverse", q, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("reverse lookup failed: %s", apiResp.Error)
	}

	return &apiResp, nil
}

// Search forward geocodes a free-form query. When near is non-nil results
// are biased towards a box around it.
func (c *Client) Search(ctx context.Context, query string, limit int, near *[2]float64) (SearchAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", strconv.Itoa(limit))
	if near != nil {
		lon, lat := near[0], near[1]
		q.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", lon-0.5, lat+0.5, lon+0.5, lat-0.5))
	}

	var apiResp SearchAPIResponse
	if err := c.get(ctx, "/search", q, &apiResp); err != nil {
		return nil, err
	}

	return apiResp, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	u.RawQuery = q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching nominatim", "path", path)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch nominatim", "path", path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("nominatim returned error",
			"path", path,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
