package mapbox

// GeocodingAPIResponse is a GeoJSON FeatureCollection of places
type GeocodingAPIResponse struct {
	Type        string    `json:"type"`
	Query       []any     `json:"query"`
	Features    []Feature `json:"features"`
	Attribution string    `json:"attribution"`
}

type Feature struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	PlaceType  []string `json:"place_type"`
	Relevance  float64  `json:"relevance"`
	Address    string   `json:"address"`
	Properties struct {
		Category  string `json:"category"`
		Landmark  bool   `json:"landmark"`
		Address   string `json:"address"`
		Wikidata  string `json:"wikidata"`
		ShortCode string `json:"short_code"`
	} `json:"properties"`
	Text      string     `json:"text"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"`
	Geometry  struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	} `json:"geometry"`
	Context []ContextEntry `json:"context"`
}

type ContextEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	ShortCode string `json:"short_code"`
	Wikidata  string `json:"wikidata"`
}
