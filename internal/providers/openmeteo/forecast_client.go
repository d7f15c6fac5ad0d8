package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=40.71&longitude=-74.00&current=temperature_2m,apparent_temperature,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m&daily=weather_code,temperature_2m_max,temperature_2m_min&timezone=auto&forecast_days=5&wind_speed_unit=ms
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var (
	currentVars = []string{
		"temperature_2m",
		"apparent_temperature",
		"relative_humidity_2m",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}

	dailyVars = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
	}
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current conditions and a daily outlook in metric units.
// Daily dates are local to the coordinate (timezone=auto).
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	q.Set("wind_speed_unit", "ms")
	q.Set("temperature_unit", "celsius")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching open-meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"forecast_days", forecastDays,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch open-meteo forecast", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("open-meteo forecast returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
