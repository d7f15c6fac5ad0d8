package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"local-guide/internal/providers/openmeteo"
	"local-guide/internal/providers/openweathermap"
	"local-guide/internal/types"
)

// forecastStride picks one entry per day from a 3-hourly list
const forecastStride = 8

// Provider supplies current conditions and a daily outlook
type Provider interface {
	Name() string
	Current(ctx context.Context, coords types.Coords) (*Current, error)
	// Daily returns up to days summaries with dates in loc
	Daily(ctx context.Context, coords types.Coords, days int, loc *time.Location) ([]DailySummary, error)
}

// OpenWeatherMapClient is the subset of the OpenWeatherMap client used here
type OpenWeatherMapClient interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openweathermap.CurrentAPIResponse, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error)
}

// OpenMeteoClient is the subset of the Open-Meteo client used here
type OpenMeteoClient interface {
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

type openWeatherMapProvider struct {
	client OpenWeatherMapClient
}

func NewOpenWeatherMapProvider(client OpenWeatherMapClient) Provider {
	return &openWeatherMapProvider{client: client}
}

func (p *openWeatherMapProvider) Name() string { return ProviderOpenWeatherMap }

func (p *openWeatherMapProvider) Current(ctx context.Context, coords types.Coords) (*Current, error) {
	resp, err := p.client.GetCurrent(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}

	cond := resp.PrimaryCondition()
	condition := types.ParseCondition(cond.Main)

	return &Current{
		Temperature: types.NewTemperatureFromCelsius(resp.Main.Temp).Rounded(),
		FeelsLike:   types.NewTemperatureFromCelsius(resp.Main.FeelsLike).Rounded(),
		Condition:   condition,
		Description: cond.Description,
		Icon:        condition.Icon(),
		Humidity:    resp.Main.Humidity,
		Wind:        types.NewWindFromMps(resp.Wind.Speed, resp.Wind.Gust, resp.Wind.Deg),
	}, nil
}

// Daily samples every 8th entry of the 3-hourly forecast, i.e. the same hour each day
func (p *openWeatherMapProvider) Daily(ctx context.Context, coords types.Coords, days int, loc *time.Location) ([]DailySummary, error) {
	resp, err := p.client.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}

	out := make([]DailySummary, 0, days)
	for i := 0; i < len(resp.List) && len(out) < days; i += forecastStride {
		entry := resp.List[i]
		cond := entry.PrimaryCondition()
		day := time.Unix(entry.Dt, 0).In(loc)
		out = append(out, newDailySummary(day, entry.Main.Temp, types.ParseCondition(cond.Main), cond.Description))
	}
	return out, nil
}

type openMeteoProvider struct {
	client OpenMeteoClient
}

func NewOpenMeteoProvider(client OpenMeteoClient) Provider {
	return &openMeteoProvider{client: client}
}

func (p *openMeteoProvider) Name() string { return ProviderOpenMeteo }

func (p *openMeteoProvider) Current(ctx context.Context, coords types.Coords) (*Current, error) {
	resp, err := p.client.GetForecast(ctx, coords.Latitude, coords.Longitude, 1)
	if err != nil {
		return nil, err
	}

	c := resp.Current
	w := types.NewWeather(c.WeatherCode)

	return &Current{
		Temperature: types.NewTemperatureFromCelsius(c.Temperature2M).Rounded(),
		FeelsLike:   types.NewTemperatureFromCelsius(c.ApparentTemperature).Rounded(),
		Condition:   w.Condition,
		Description: strings.ToLower(w.Description),
		Icon:        w.Condition.Icon(),
		Humidity:    c.RelativeHumidity2M,
		Wind:        types.NewWindFromMps(c.WindSpeed10M, 0, c.WindDirection10M),
	}, nil
}

// Daily uses the daily maximum as the day's temperature
func (p *openMeteoProvider) Daily(ctx context.Context, coords types.Coords, days int, loc *time.Location) ([]DailySummary, error) {
	resp, err := p.client.GetForecast(ctx, coords.Latitude, coords.Longitude, days)
	if err != nil {
		return nil, err
	}

	d := resp.Daily
	if len(d.WeatherCode) < len(d.Time) || len(d.Temperature2MMax) < len(d.Time) {
		return nil, fmt.Errorf("daily forecast arrays have mismatched lengths")
	}

	out := make([]DailySummary, 0, days)
	for i := 0; i < len(d.Time) && len(out) < days; i++ {
		// Dates are already local to the coordinate
		day, err := time.ParseInLocation(time.DateOnly, d.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse forecast date %q: %w", d.Time[i], err)
		}
		w := types.NewWeather(d.WeatherCode[i])
		out = append(out, newDailySummary(day, d.Temperature2MMax[i], w.Condition, strings.ToLower(w.Description)))
	}
	return out, nil
}
