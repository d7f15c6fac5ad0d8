package googleplaces

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// API Docs: https://developers.google.com/maps/documentation/places/web-service/search-nearby
// Sample request: https://maps.googleapis.com/maps/api/place/nearbysearch/json?location=40.7142,-74.006&radius=5000&type=tourist_attraction&key=KEY
const (
	DefaultRadiusMeters = 5000
)

type Client struct {
	maps   *maps.Client
	logger *slog.Logger
}

// NewClient creates a Places client. Extra options (base URL, HTTP client) are
// appended after the API key.
func NewClient(apiKey string, logger *slog.Logger, opts ...maps.ClientOption) (*Client, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)

	mc, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		maps:   mc,
		logger: logger.With("component", "googleplaces-client"),
	}, nil
}

// NearbyAttractions returns tourist attractions within radiusMeters of the coordinate
func (c *Client) NearbyAttractions(ctx context.Context, latitude, longitude float64, radiusMeters uint) ([]maps.PlacesSearchResult, error) {
	if radiusMeters == 0 {
		radiusMeters = DefaultRadiusMeters
	}

	c.logger.Debug("fetching nearby attractions",
		"latitude", latitude,
		"longitude", longitude,
		"radius", radiusMeters,
	)

	resp, err := c.maps.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: latitude, Lng: longitude},
		Radius:   radiusMeters,
		Type:     maps.PlaceTypeTouristAttraction,
	})
	if err != nil {
		c.logger.Error("nearby search failed", "error", err)
		return nil, fmt.Errorf("failed to search nearby places: %w", err)
	}

	c.logger.Debug("successfully fetched nearby attractions", "result_count", len(resp.Results))

	return resp.Results, nil
}
