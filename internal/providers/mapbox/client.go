package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://docs.mapbox.com/api/search/geocoding-v5/
// Sample requests:
// - https://api.mapbox.com/geocoding/v5/mapbox.places/Lisbon.json?access_token=TOKEN
// - https://api.mapbox.com/geocoding/v5/mapbox.places/-74.006,40.7142.json?access_token=TOKEN
const (
	baseURL     = "https://api.mapbox.com"
	placesPath  = "/geocoding/v5/mapbox.places/"
	defaultLang = "en"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

func NewClient(token string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
		logger:     logger.With("component", "mapbox-client"),
	}
}

// Forward geocodes a free-form query. proximity, when set, is a [lng, lat]
// pair used to rank nearby results first.
func (c *Client) Forward(ctx context.Context, query string, limit int, proximity *[2]float64) (*GeocodingAPIResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("autocomplete", "true")
	q.Set("language", defaultLang)
	if proximity != nil {
		q.Set("proximity", fmt.Sprintf("%f,%f", proximity[0], proximity[1]))
	}

	return c.geocode(ctx, query, q)
}

// Reverse geocodes a coordinate pair
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*GeocodingAPIResponse, error) {
	q := url.Values{}
	q.Set("limit", "1")
	q.Set("language", defaultLang)

	return c.geocode(ctx, fmt.Sprintf("%f,%f", longitude, latitude), q)
}

func (c *Client) geocode(ctx context.Context, search string, q url.Values) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	// The search text is a path segment, so slashes in it must be escaped
	u.Path = placesPath + search + ".json"
	u.RawPath = placesPath + url.PathEscape(search) + ".json"

	c.logger.Debug("fetching mapbox geocoding", "search", search)

	q.Set("access_token", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch mapbox geocoding", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("mapbox geocoding returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GeocodingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched mapbox geocoding", "feature_count", len(apiResp.Features))

	return &apiResp, nil
}
