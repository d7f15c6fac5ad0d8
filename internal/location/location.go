package location

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"local-guide/internal/config"
	"local-guide/internal/providers/openmeteo"
	"local-guide/internal/providers/openstreetmap"
	"local-guide/internal/timezone"
	"local-guide/internal/types"
)

// FixStatus is what the device geolocation API reported
type FixStatus string

const (
	FixGranted     FixStatus = "granted"
	FixDenied      FixStatus = "denied"
	FixUnsupported FixStatus = "unsupported"
)

// Source records where the acquired coordinate came from
type Source string

const (
	SourceDevice  Source = "device"
	SourceDefault Source = "default"
)

const (
	NoticeDenied      = "Could not get your location. Using default location."
	NoticeUnsupported = "Geolocation is not supported. Using default location."
)

// Fix is the result of a device geolocation attempt
type Fix struct {
	Status    FixStatus `json:"status" binding:"required,oneof=granted denied unsupported" example:"granted"`
	Latitude  float64   `json:"latitude" example:"40.7142"`
	Longitude float64   `json:"longitude" example:"-74.006"`
}

// Position is an acquired coordinate plus best-effort context about it
type Position struct {
	Coords    types.Coords       `json:"coords"`
	Source    Source             `json:"source"`
	Notice    string             `json:"notice,omitempty"`
	Location  types.LocationInfo `json:"location"`
	Timezone  string             `json:"timezone,omitempty"`
	Elevation *types.Elevation   `json:"elevation,omitempty"`
}

// Service resolves device fixes into positions
type Service interface {
	// Acquire turns a device fix into a position, falling back to the default coordinate
	Acquire(ctx context.Context, fix Fix) (*Position, error)
	// Describe enriches an already known coordinate
	Describe(ctx context.Context, coords types.Coords) (*Position, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	elevationProvider ElevationProvider
	locationProvider  ReverseGeocodeProvider
	timezoneService   timezone.Service
	defaultCoords     types.Coords
	logger            *slog.Logger
}

// NewLocationService creates a new location service with real provider clients.
// The Nominatim client is shared with the places service so both stay under
// one request budget.
func NewLocationService(cfg *config.Config, nominatim ReverseGeocodeProvider, tzSvc timezone.Service, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(
		openmeteo.NewElevationClient(logger),
		nominatim,
		tzSvc,
		types.NewCoords(cfg.App.DefaultLatitude, cfg.App.DefaultLongitude),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	elevationProvider ElevationProvider,
	locationProvider ReverseGeocodeProvider,
	timezoneService timezone.Service,
	defaultCoords types.Coords,
	logger *slog.Logger,
) Service {
	return &locationService{
		elevationProvider: elevationProvider,
		locationProvider:  locationProvider,
		timezoneService:   timezoneService,
		defaultCoords:     defaultCoords,
		logger:            logger.With("component", "location-service"),
	}
}

func (s *locationService) Acquire(ctx context.Context, fix Fix) (*Position, error) {
	var pos *Position

	switch fix.Status {
	case FixGranted:
		coords := types.NewCoords(fix.Latitude, fix.Longitude)
		if err := coords.Validate(); err != nil {
			return nil, err
		}
		pos = &Position{Coords: coords, Source: SourceDevice}
	case FixUnsupported:
		pos = &Position{Coords: s.defaultCoords, Source: SourceDefault, Notice: NoticeUnsupported}
	default:
		// Denied, timed out or otherwise unavailable
		pos = &Position{Coords: s.defaultCoords, Source: SourceDefault, Notice: NoticeDenied}
	}

	s.logger.Debug("acquired location",
		"status", fix.Status,
		"source", pos.Source,
		"latitude", pos.Coords.Latitude,
		"longitude", pos.Coords.Longitude,
	)

	s.enrich(ctx, pos)

	return pos, nil
}

func (s *locationService) Describe(ctx context.Context, coords types.Coords) (*Position, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	pos := &Position{Coords: coords, Source: SourceDevice}
	s.enrich(ctx, pos)

	return pos, nil
}

// enrich fills in place name, elevation and timezone by calling providers in parallel.
// Failures leave the field empty.
func (s *locationService) enrich(ctx context.Context, pos *Position) {
	var (
		wg            sync.WaitGroup
		elevationResp *openmeteo.ElevationAPIResponse
		locationResp  *openstreetmap.LookupAPIResponse
		elevationErr  error
		locationErr   error
	)

	lat, lon := pos.Coords.Latitude, pos.Coords.Longitude

	wg.Add(2)

	// Get elevation data
	go func() {
		defer wg.Done()
		elevationResp, elevationErr = s.elevationProvider.GetElevation(ctx, lat, lon)
		if elevationErr != nil {
			elevationErr = fmt.Errorf("failed to get elevation: %w", elevationErr)
		}
	}()

	// Get location data
	go func() {
		defer wg.Done()
		locationResp, locationErr = s.locationProvider.Lookup(ctx, lat, lon)
		if locationErr != nil {
			locationErr = fmt.Errorf("failed to get location: %w", locationErr)
		}
	}()

	// Timezone lookup is local, no need for a goroutine
	tz, tzErr := s.timezoneService.GetTimezone(lat, lon)

	wg.Wait()

	if tzErr != nil {
		s.logger.Warn("timezone lookup failed", "latitude", lat, "longitude", lon, "error", tzErr)
	} else {
		pos.Timezone = tz
	}

	if elevationErr != nil {
		s.logger.Warn("elevation lookup failed", "latitude", lat, "longitude", lon, "error", elevationErr)
	} else if elevation, err := s.translateElevation(elevationResp); err == nil {
		pos.Elevation = &elevation
	}

	if locationErr != nil {
		s.logger.Warn("reverse geocoding failed", "latitude", lat, "longitude", lon, "error", locationErr)
	} else if info, err := s.translateLocationInfo(locationResp); err == nil {
		pos.Location = info
	}
}

// translateElevation converts an OpenMeteo elevation response to domain Elevation type
func (s *locationService) translateElevation(resp *openmeteo.ElevationAPIResponse) (types.Elevation, error) {
	if resp == nil || len(resp.Elevation) == 0 {
		return types.Elevation{}, fmt.Errorf("elevation response is empty")
	}

	// OpenMeteo returns elevation in meters
	return types.NewElevationFromMeters(resp.Elevation[0]), nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func (s *locationService) translateLocationInfo(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	// Prefer the settlement name over a street or building
	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		County:      resp.Address.County,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}, nil
}
