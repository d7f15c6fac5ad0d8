package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"local-guide/internal/config"
	"local-guide/internal/providers/openmeteo"
	"local-guide/internal/providers/openweathermap"
	"local-guide/internal/timezone"
	"local-guide/internal/types"
)

var ErrProviderNotConfigured = errors.New("weather provider is not configured")

const (
	cacheTTL             = 10 * time.Minute
	cacheCleanupInterval = 20 * time.Minute
)

type Service interface {
	// GetReport returns current conditions and the daily outlook for coords
	GetReport(ctx context.Context, coords types.Coords) (*Report, error)
}

type weatherService struct {
	provider        Provider
	timezoneService timezone.Service
	cache           *cache.Cache
	cfg             *config.Config
	logger          *slog.Logger
	now             func() time.Time
}

// NewWeatherService uses OpenWeatherMap when a key is configured and Open-Meteo otherwise
func NewWeatherService(cfg *config.Config, tzSvc timezone.Service, logger *slog.Logger) Service {
	var provider Provider
	if key := cfg.Providers.OpenWeatherMap.APIKey; key != "" {
		provider = NewOpenWeatherMapProvider(openweathermap.NewClient(key, logger))
	} else {
		provider = NewOpenMeteoProvider(openmeteo.NewForecastClient(logger))
	}
	return NewWeatherServiceWithProvider(provider, tzSvc, cfg, logger)
}

func NewWeatherServiceWithProvider(
	provider Provider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		provider:        provider,
		timezoneService: timezoneService,
		cache:           cache.New(cacheTTL, cacheCleanupInterval),
		cfg:             cfg,
		logger:          logger.With("component", "weather-service"),
		now:             time.Now,
	}
}

func (s *weatherService) GetReport(ctx context.Context, coords types.Coords) (*Report, error) {
	if s.provider == nil {
		return nil, ErrProviderNotConfigured
	}
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	key := coords.Key()
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("weather cache hit", "coords", key)
		return cached.(*Report), nil
	}

	// Look up timezone for the location
	loc, err := s.timezoneService.GetLocation(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone, labelling dates in UTC",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		loc = time.UTC
	}

	var (
		wg          sync.WaitGroup
		current     *Current
		forecast    []DailySummary
		currentErr  error
		forecastErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.provider.Current(ctx, coords)
	}()

	go func() {
		defer wg.Done()
		forecast, forecastErr = s.provider.Daily(ctx, coords, s.cfg.App.ForecastDays, loc)
	}()

	wg.Wait()

	if currentErr != nil {
		s.logger.Error("failed to get current conditions", "provider", s.provider.Name(), "error", currentErr)
		return nil, fmt.Errorf("failed to get current conditions: %w", currentErr)
	}

	// The panel still renders without an outlook
	if forecastErr != nil {
		s.logger.Warn("failed to get forecast", "provider", s.provider.Name(), "error", forecastErr)
		forecast = nil
	}
	if forecast == nil {
		forecast = []DailySummary{}
	}

	report := &Report{
		Coords:    coords,
		Timezone:  loc.String(),
		Current:   *current,
		Forecast:  forecast,
		Provider:  s.provider.Name(),
		FetchedAt: s.now().UTC(),
	}

	// Partial reports are not cached so the next request retries the outlook
	if forecastErr == nil {
		s.cache.Set(key, report, cache.DefaultExpiration)
	}

	return report, nil
}
