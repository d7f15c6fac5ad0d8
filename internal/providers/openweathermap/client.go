package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://openweathermap.org/current, https://openweathermap.org/forecast5
// Sample requests:
// - https://api.openweathermap.org/data/2.5/weather?lat=40.7142&lon=-74.006&units=metric&appid=KEY
// - https://api.openweathermap.org/data/2.5/forecast?lat=40.7142&lon=-74.006&units=metric&appid=KEY
const (
	baseURL      = "https://api.openweathermap.org"
	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "openweathermap-client"),
	}
}

// GetCurrent fetches current conditions in metric units
func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	var apiResp CurrentAPIResponse
	if err := c.get(ctx, currentPath, latitude, longitude, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast in metric units
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(ctx, forecastPath, latitude, longitude, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched forecast", "entry_count", len(apiResp.List))

	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, path string, latitude, longitude float64, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	c.logger.Debug("fetching openweathermap data",
		"path", path,
		"latitude", latitude,
		"longitude", longitude,
	)

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch openweathermap data", "path", path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("openweathermap returned error",
			"path", path,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
