package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name" example:"Manhattan"`
	County      string `json:"county,omitempty" example:"New York County"`
	State       string `json:"state,omitempty" example:"New York"`
	Country     string `json:"country,omitempty" example:"United States"`
	CountryCode string `json:"country_code,omitempty" example:"us"`
}

// IsZero reports whether no field is set
func (l LocationInfo) IsZero() bool {
	return l == LocationInfo{}
}
