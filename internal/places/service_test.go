package places

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"googlemaps.github.io/maps"

	"local-guide/internal/config"
	"local-guide/internal/providers/mapbox"
	"local-guide/internal/providers/openstreetmap"
	"local-guide/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockMapbox struct {
	forward      *mapbox.GeocodingAPIResponse
	reverse      *mapbox.GeocodingAPIResponse
	err          error
	calls        int
	gotProximity *[2]float64
}

func (m *mockMapbox) Forward(ctx context.Context, query string, limit int, proximity *[2]float64) (*mapbox.GeocodingAPIResponse, error) {
	m.calls++
	m.gotProximity = proximity
	return m.forward, m.err
}

func (m *mockMapbox) Reverse(ctx context.Context, latitude, longitude float64) (*mapbox.GeocodingAPIResponse, error) {
	m.calls++
	return m.reverse, m.err
}

type mockNominatim struct {
	search openstreetmap.SearchAPIResponse
	lookup *openstreetmap.LookupAPIResponse
	err    error
}

func (m *mockNominatim) Search(ctx context.Context, query string, limit int, near *[2]float64) (openstreetmap.SearchAPIResponse, error) {
	return m.search, m.err
}

func (m *mockNominatim) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	return m.lookup, m.err
}

type mockNearby struct {
	results   []maps.PlacesSearchResult
	err       error
	gotRadius uint
}

func (m *mockNearby) NearbyAttractions(ctx context.Context, latitude, longitude float64, radiusMeters uint) ([]maps.PlacesSearchResult, error) {
	m.gotRadius = radiusMeters
	return m.results, m.err
}

func lisbonFeatures() *mapbox.GeocodingAPIResponse {
	var f mapbox.Feature
	f.ID = "place.1"
	f.PlaceType = []string{"place"}
	f.Relevance = 1
	f.Text = "Lisbon"
	f.PlaceName = "Lisbon, Lisbon, Portugal"
	f.Center = [2]float64{-9.1393, 38.7223}
	return &mapbox.GeocodingAPIResponse{Features: []mapbox.Feature{f}}
}

func TestPlacesService_Search_Mapbox(t *testing.T) {
	provider := &mockMapbox{forward: lisbonFeatures()}
	svc := NewPlacesServiceWithProviders(NewMapboxGeocoder(provider), nil, discardLogger())

	near := types.NewCoords(40.7142, -74.0060)
	got, err := svc.Search(context.Background(), "  Lisbon ", &near)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Search()) = %d, want 1", len(got))
	}

	p := got[0]
	if p.Name != "Lisbon, Lisbon, Portugal" || p.Text != "Lisbon" {
		t.Errorf("place = %+v", p)
	}
	// Selection uses lat = center[1], lng = center[0]
	if p.Coords.Latitude != 38.7223 || p.Coords.Longitude != -9.1393 {
		t.Errorf("Coords = %v, want lat 38.7223 lng -9.1393", p.Coords)
	}
	if p.Category != "place" || p.Source != SourceMapbox {
		t.Errorf("Category = %q Source = %q", p.Category, p.Source)
	}
	if provider.gotProximity == nil || provider.gotProximity[0] != -74.0060 {
		t.Errorf("proximity = %v, want [lng, lat] of the near coordinate", provider.gotProximity)
	}

	// Same query in a different case is served from cache
	if _, err := svc.Search(context.Background(), "LISBON", &near); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
}

func TestPlacesService_Search_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		near    *types.Coords
		err     error
		wantErr error
	}{
		{name: "empty query", query: "", wantErr: ErrEmptyQuery},
		{name: "blank query", query: " \t ", wantErr: ErrEmptyQuery},
		{name: "invalid proximity", query: "Rome", near: &types.Coords{Latitude: 100}, wantErr: types.ErrInvalidLatitude},
		{name: "provider failure", query: "Rome", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPlacesServiceWithProviders(NewMapboxGeocoder(&mockMapbox{err: tt.err}), nil, discardLogger())

			_, err := svc.Search(context.Background(), tt.query, tt.near)
			if err == nil {
				t.Fatal("Search() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Search() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlacesService_Search_Nominatim(t *testing.T) {
	provider := &mockNominatim{search: openstreetmap.SearchAPIResponse{
		{
			OsmType:     "relation",
			OsmId:       5400890,
			Lat:         "38.7077507",
			Lon:         "-9.1365919",
			Type:        "city",
			Name:        "Lisboa",
			DisplayName: "Lisboa, Portugal",
			Importance:  0.8,
		},
	}}
	svc := NewPlacesServiceWithProviders(NewNominatimGeocoder(provider), nil, discardLogger())

	got, err := svc.Search(context.Background(), "Lisbon", nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Search()) = %d, want 1", len(got))
	}

	p := got[0]
	if p.ID != "relation/5400890" {
		t.Errorf("ID = %q, want relation/5400890", p.ID)
	}
	if p.Center != [2]float64{-9.1365919, 38.7077507} {
		t.Errorf("Center = %v", p.Center)
	}
	if p.Text != "Lisboa" || p.Name != "Lisboa, Portugal" || p.Source != SourceNominatim {
		t.Errorf("place = %+v", p)
	}
}

func TestPlacesService_Reverse(t *testing.T) {
	tests := []struct {
		name     string
		geocoder Geocoder
		wantText string
		wantErr  error
	}{
		{
			name:     "mapbox",
			geocoder: NewMapboxGeocoder(&mockMapbox{reverse: lisbonFeatures()}),
			wantText: "Lisbon",
		},
		{
			name:     "mapbox with no features",
			geocoder: NewMapboxGeocoder(&mockMapbox{reverse: &mapbox.GeocodingAPIResponse{}}),
			wantErr:  ErrNotFound,
		},
		{
			name: "nominatim",
			geocoder: NewNominatimGeocoder(&mockNominatim{lookup: &openstreetmap.LookupAPIResponse{
				Lat: "38.7", Lon: "-9.1", Address: openstreetmap.Address{City: "Lisboa"},
			}}),
			wantText: "Lisboa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPlacesServiceWithProviders(tt.geocoder, nil, discardLogger())

			got, err := svc.Reverse(context.Background(), types.NewCoords(38.7223, -9.1393))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Reverse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Reverse() error = %v", err)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestPlacesService_Nearby(t *testing.T) {
	origin := types.NewCoords(40.7142, -74.0060)

	result := func(id string, lat, lng float64) maps.PlacesSearchResult {
		var r maps.PlacesSearchResult
		r.PlaceID = id
		r.Name = id
		r.Vicinity = id + " St"
		r.Geometry.Location = maps.LatLng{Lat: lat, Lng: lng}
		r.Types = []string{"tourist_attraction"}
		return r
	}

	t.Run("not configured", func(t *testing.T) {
		svc := NewPlacesServiceWithProviders(NewMapboxGeocoder(&mockMapbox{}), nil, discardLogger())
		if _, err := svc.Nearby(context.Background(), origin, 0); !errors.Is(err, ErrNearbyNotConfigured) {
			t.Errorf("Nearby() error = %v, want ErrNearbyNotConfigured", err)
		}
	})

	t.Run("sorted by distance with default radius", func(t *testing.T) {
		provider := &mockNearby{results: []maps.PlacesSearchResult{
			result("far", 40.7580, -73.9855),
			result("near", 40.7128, -74.0060),
		}}
		svc := NewPlacesServiceWithProviders(NewMapboxGeocoder(&mockMapbox{}), provider, discardLogger())

		got, err := svc.Nearby(context.Background(), origin, 0)
		if err != nil {
			t.Fatalf("Nearby() error = %v", err)
		}
		if provider.gotRadius != 5000 {
			t.Errorf("radius = %d, want 5000", provider.gotRadius)
		}
		if len(got) != 2 || got[0].ID != "near" || got[1].ID != "far" {
			t.Fatalf("Nearby() order = %+v, want near then far", got)
		}
		if got[0].DistanceMeters < 100 || got[0].DistanceMeters > 200 {
			t.Errorf("near distance = %v, want about 155m", got[0].DistanceMeters)
		}
		if got[0].Vicinity != "near St" || got[0].Source != SourceGooglePlaces {
			t.Errorf("near = %+v", got[0])
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := &mockNearby{err: errors.New("OVER_QUERY_LIMIT")}
		svc := NewPlacesServiceWithProviders(NewMapboxGeocoder(&mockMapbox{}), provider, discardLogger())
		if _, err := svc.Nearby(context.Background(), origin, 1000); err == nil {
			t.Error("Nearby() error = nil, want error")
		}
	})
}

func TestNewPlacesService_UsesGivenNominatimWithoutMapboxToken(t *testing.T) {
	provider := &mockNominatim{search: openstreetmap.SearchAPIResponse{
		{OsmType: "node", OsmId: 1, Lat: "38.7", Lon: "-9.1", Name: "Lisboa", DisplayName: "Lisboa, Portugal"},
	}}

	svc, err := NewPlacesService(&config.Config{}, provider, discardLogger())
	if err != nil {
		t.Fatalf("NewPlacesService() error = %v", err)
	}

	got, err := svc.Search(context.Background(), "Lisbon", nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].Source != SourceNominatim {
		t.Errorf("Search() = %+v, want one Nominatim place", got)
	}
}
