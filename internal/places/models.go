package places

import "local-guide/internal/types"

// Provider names reported on each place
const (
	SourceMapbox       = "mapbox"
	SourceNominatim    = "nominatim"
	SourceGooglePlaces = "google_places"
)

// Place is a geocoding or point-of-interest result
type Place struct {
	ID   string `json:"id" example:"place.9962989141465270"`
	Name string `json:"name" example:"Lisbon, Lisbon, Portugal"`
	// Text is the short name of the place without its context
	Text string `json:"text" example:"Lisbon"`
	// Center is a GeoJSON style [lng, lat] pair
	Center    [2]float64   `json:"center"`
	Coords    types.Coords `json:"coords"`
	Relevance float64      `json:"relevance,omitempty"`
	Category  string       `json:"category,omitempty" example:"place"`
	Address   string       `json:"address,omitempty"`
	Vicinity  string       `json:"vicinity,omitempty"`
	Rating    float32      `json:"rating,omitempty"`

	// DistanceMeters is set on nearby results, measured from the query point
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	Source         string  `json:"source"`
}

// newPlace sets both coordinate representations from a [lng, lat] center
func newPlace(center [2]float64) Place {
	return Place{
		Center: center,
		Coords: types.NewCoordsFromCenter(center),
	}
}
