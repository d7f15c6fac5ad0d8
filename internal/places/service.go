package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"googlemaps.github.io/maps"

	"local-guide/internal/config"
	"local-guide/internal/providers/googleplaces"
	"local-guide/internal/providers/mapbox"
	"local-guide/internal/types"
)

var (
	ErrEmptyQuery          = errors.New("search query must not be empty")
	ErrNotFound            = errors.New("no place found")
	ErrNearbyNotConfigured = errors.New("nearby search is not configured")
)

const (
	cacheTTL             = 10 * time.Minute
	cacheCleanupInterval = 20 * time.Minute
)

// Service searches for places and points of interest
type Service interface {
	// Search forward geocodes a query, ranking results near the given coordinate
	Search(ctx context.Context, query string, near *types.Coords) ([]Place, error)
	// Reverse returns the place at a coordinate
	Reverse(ctx context.Context, coords types.Coords) (*Place, error)
	// Nearby returns tourist attractions around a coordinate, closest first
	Nearby(ctx context.Context, coords types.Coords, radiusMeters uint) ([]Place, error)
}

// NearbyProvider defines the interface for point-of-interest providers
type NearbyProvider interface {
	NearbyAttractions(ctx context.Context, latitude, longitude float64, radiusMeters uint) ([]maps.PlacesSearchResult, error)
}

type placesService struct {
	geocoder       Geocoder
	nearbyProvider NearbyProvider
	cache          *cache.Cache
	logger         *slog.Logger
}

// NewPlacesService picks Mapbox when a token is configured and the shared
// Nominatim client otherwise. Nearby search is only available with a Google
// Places key.
func NewPlacesService(cfg *config.Config, nominatim NominatimProvider, logger *slog.Logger) (Service, error) {
	var geocoder Geocoder
	if token := cfg.Providers.Mapbox.Token; token != "" {
		geocoder = NewMapboxGeocoder(mapbox.NewClient(token, logger))
	} else {
		geocoder = NewNominatimGeocoder(nominatim)
	}

	var nearby NearbyProvider
	if key := cfg.Providers.GooglePlaces.APIKey; key != "" {
		client, err := googleplaces.NewClient(key, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create places client: %w", err)
		}
		nearby = client
	}

	return NewPlacesServiceWithProviders(geocoder, nearby, logger), nil
}

// NewPlacesServiceWithProviders creates a places service with custom providers.
// nearbyProvider may be nil.
func NewPlacesServiceWithProviders(geocoder Geocoder, nearbyProvider NearbyProvider, logger *slog.Logger) Service {
	return &placesService{
		geocoder:       geocoder,
		nearbyProvider: nearbyProvider,
		cache:          cache.New(cacheTTL, cacheCleanupInterval),
		logger:         logger.With("component", "places-service", "geocoder", geocoder.Name()),
	}
}

func (s *placesService) Search(ctx context.Context, query string, near *types.Coords) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	key := "search:" + strings.ToLower(query)
	if near != nil {
		if err := near.Validate(); err != nil {
			return nil, err
		}
		key += "@" + near.Key()
	}

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("place search cache hit", "query", query)
		return cached.([]Place), nil
	}

	results, err := s.geocoder.Forward(ctx, query, near)
	if err != nil {
		s.logger.Error("place search failed", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	s.cache.Set(key, results, cache.DefaultExpiration)

	s.logger.Debug("place search complete", "query", query, "result_count", len(results))

	return results, nil
}

func (s *placesService) Reverse(ctx context.Context, coords types.Coords) (*Place, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	key := "reverse:" + coords.Key()
	if cached, ok := s.cache.Get(key); ok {
		p := cached.(Place)
		return &p, nil
	}

	results, err := s.geocoder.Reverse(ctx, coords)
	if err != nil {
		s.logger.Error("reverse geocoding failed", "coords", coords.String(), "error", err)
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w at %s", ErrNotFound, coords)
	}

	s.cache.Set(key, results[0], cache.DefaultExpiration)

	return &results[0], nil
}

func (s *placesService) Nearby(ctx context.Context, coords types.Coords, radiusMeters uint) ([]Place, error) {
	if s.nearbyProvider == nil {
		return nil, ErrNearbyNotConfigured
	}
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if radiusMeters == 0 {
		radiusMeters = googleplaces.DefaultRadiusMeters
	}

	key := fmt.Sprintf("nearby:%s:%d", coords.Key(), radiusMeters)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]Place), nil
	}

	results, err := s.nearbyProvider.NearbyAttractions(ctx, coords.Latitude, coords.Longitude, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby places: %w", err)
	}

	out := make([]Place, 0, len(results))
	for _, r := range results {
		p := translateSearchResult(r)
		p.DistanceMeters = coords.DistanceTo(p.Coords)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceMeters < out[j].DistanceMeters
	})

	s.cache.Set(key, out, cache.DefaultExpiration)

	return out, nil
}

// translateSearchResult converts a Google Places result to a domain place
func translateSearchResult(r maps.PlacesSearchResult) Place {
	loc := r.Geometry.Location
	p := newPlace([2]float64{loc.Lng, loc.Lat})
	p.ID = r.PlaceID
	p.Name = r.Name
	p.Text = r.Name
	p.Vicinity = r.Vicinity
	p.Address = r.FormattedAddress
	p.Rating = r.Rating
	if len(r.Types) > 0 {
		p.Category = r.Types[0]
	}
	p.Source = SourceGooglePlaces
	return p
}
