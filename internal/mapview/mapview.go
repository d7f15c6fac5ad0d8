package mapview

import (
	"local-guide/internal/places"
	"local-guide/internal/types"
)

const (
	InitialZoom   = 12
	SelectionZoom = 14
	DefaultStyle  = "mapbox://styles/mapbox/streets-v11"

	UserMarkerColor = "#2196f3"
	POIMarkerColor  = "#FF0000"
)

// MarkerKind distinguishes the user's own marker from points of interest
type MarkerKind string

const (
	MarkerUser MarkerKind = "user"
	MarkerPOI  MarkerKind = "poi"
)

type Marker struct {
	Kind   MarkerKind   `json:"kind"`
	Coords types.Coords `json:"coords"`
	Color  string       `json:"color" example:"#2196f3"`
	Label  string       `json:"label,omitempty"`
	Popup  string       `json:"popup,omitempty"`
}

// View is the camera position and marker set a client renders
type View struct {
	Center  types.Coords `json:"center"`
	Zoom    float64      `json:"zoom" example:"12"`
	Style   string       `json:"style" example:"mapbox://styles/mapbox/streets-v11"`
	Markers []Marker     `json:"markers"`
}

// Initial centres the map on coords with a single user marker
func Initial(coords types.Coords) View {
	return View{
		Center: coords,
		Zoom:   InitialZoom,
		Style:  DefaultStyle,
		Markers: []Marker{
			{Kind: MarkerUser, Coords: coords, Color: UserMarkerColor, Label: "You are here"},
		},
	}
}

// FlyTo moves the camera to coords at selection zoom. The user marker follows
// the shared coordinate and points of interest are kept.
func FlyTo(v View, coords types.Coords) View {
	out := View{
		Center:  coords,
		Zoom:    SelectionZoom,
		Style:   v.Style,
		Markers: make([]Marker, 0, len(v.Markers)+1),
	}
	if out.Style == "" {
		out.Style = DefaultStyle
	}

	moved := false
	for _, m := range v.Markers {
		if m.Kind == MarkerUser {
			m.Coords = coords
			moved = true
		}
		out.Markers = append(out.Markers, m)
	}
	if !moved {
		out.Markers = append([]Marker{{Kind: MarkerUser, Coords: coords, Color: UserMarkerColor, Label: "You are here"}}, out.Markers...)
	}
	return out
}

// WithPointsOfInterest replaces the view's POI markers with one red marker per place
func WithPointsOfInterest(v View, pois []places.Place) View {
	out := v
	out.Markers = make([]Marker, 0, len(v.Markers)+len(pois))
	for _, m := range v.Markers {
		if m.Kind != MarkerPOI {
			out.Markers = append(out.Markers, m)
		}
	}

	for _, p := range pois {
		popup := p.Name
		if p.Vicinity != "" {
			popup += "\n" + p.Vicinity
		}
		out.Markers = append(out.Markers, Marker{
			Kind:   MarkerPOI,
			Coords: p.Coords,
			Color:  POIMarkerColor,
			Label:  p.Text,
			Popup:  popup,
		})
	}
	return out
}
