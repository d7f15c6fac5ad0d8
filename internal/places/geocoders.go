package places

import (
	"context"
	"fmt"
	"strconv"

	"local-guide/internal/providers/mapbox"
	"local-guide/internal/providers/openstreetmap"
	"local-guide/internal/types"
)

const searchLimit = 5

// Geocoder converts between free-form place names and coordinates
type Geocoder interface {
	Forward(ctx context.Context, query string, near *types.Coords) ([]Place, error)
	Reverse(ctx context.Context, coords types.Coords) ([]Place, error)
	Name() string
}

// MapboxProvider is the subset of the Mapbox client used for geocoding
type MapboxProvider interface {
	Forward(ctx context.Context, query string, limit int, proximity *[2]float64) (*mapbox.GeocodingAPIResponse, error)
	Reverse(ctx context.Context, latitude, longitude float64) (*mapbox.GeocodingAPIResponse, error)
}

// NominatimProvider is the subset of the Nominatim client used for geocoding
type NominatimProvider interface {
	Search(ctx context.Context, query string, limit int, near *[2]float64) (openstreetmap.SearchAPIResponse, error)
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

type mapboxGeocoder struct {
	provider MapboxProvider
}

func NewMapboxGeocoder(provider MapboxProvider) Geocoder {
	return &mapboxGeocoder{provider: provider}
}

func (g *mapboxGeocoder) Name() string { return SourceMapbox }

func (g *mapboxGeocoder) Forward(ctx context.Context, query string, near *types.Coords) ([]Place, error) {
	var proximity *[2]float64
	if near != nil {
		c := near.Center()
		proximity = &c
	}

	resp, err := g.provider.Forward(ctx, query, searchLimit, proximity)
	if err != nil {
		return nil, err
	}

	return translateFeatures(resp), nil
}

func (g *mapboxGeocoder) Reverse(ctx context.Context, coords types.Coords) ([]Place, error) {
	resp, err := g.provider.Reverse(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}

	return translateFeatures(resp), nil
}

// translateFeatures converts a Mapbox feature collection to domain places
func translateFeatures(resp *mapbox.GeocodingAPIResponse) []Place {
	if resp == nil {
		return nil
	}

	out := make([]Place, 0, len(resp.Features))
	for _, f := range resp.Features {
		p := newPlace(f.Center)
		p.ID = f.ID
		p.Name = f.PlaceName
		p.Text = f.Text
		p.Relevance = f.Relevance
		p.Address = f.Properties.Address
		p.Category = f.Properties.Category
		if p.Category == "" && len(f.PlaceType) > 0 {
			p.Category = f.PlaceType[0]
		}
		p.Source = SourceMapbox
		out = append(out, p)
	}
	return out
}

type nominatimGeocoder struct {
	provider NominatimProvider
}

func NewNominatimGeocoder(provider NominatimProvider) Geocoder {
	return &nominatimGeocoder{provider: provider}
}

func (g *nominatimGeocoder) Name() string { return SourceNominatim }

func (g *nominatimGeocoder) Forward(ctx context.Context, query string, near *types.Coords) ([]Place, error) {
	var viewbox *[2]float64
	if near != nil {
		c := near.Center()
		viewbox = &c
	}

	resp, err := g.provider.Search(ctx, query, searchLimit, viewbox)
	if err != nil {
		return nil, err
	}

	out := make([]Place, 0, len(resp))
	for _, r := range resp {
		p, err := translateLookup(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *nominatimGeocoder) Reverse(ctx context.Context, coords types.Coords) ([]Place, error) {
	resp, err := g.provider.Lookup(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}

	p, err := translateLookup(*resp)
	if err != nil {
		return nil, err
	}
	return []Place{p}, nil
}

// translateLookup converts a Nominatim result to a domain place
func translateLookup(r openstreetmap.LookupAPIResponse) (Place, error) {
	lat, lon, err := r.Coordinates()
	if err != nil {
		return Place{}, fmt.Errorf("failed to parse coordinates of %q: %w", r.DisplayName, err)
	}

	p := newPlace([2]float64{lon, lat})
	p.ID = r.OsmType + "/" + strconv.Itoa(r.OsmId)
	p.Name = r.DisplayName
	p.Text = r.Name
	if p.Text == "" {
		p.Text = r.Address.Locality()
	}
	p.Relevance = r.Importance
	p.Category = r.Type
	p.Address = r.Address.Road
	p.Source = SourceNominatim
	return p, nil
}
