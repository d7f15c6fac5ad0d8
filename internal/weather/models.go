package weather

import (
	"time"

	"local-guide/internal/types"
)

// Provider names reported on each report
const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderOpenMeteo      = "open-meteo"
)

// LabelLayout formats forecast dates for the panel, e.g. "Mon, Jan 2"
const LabelLayout = "Mon, Jan 2"

// Report is everything the weather panel shows for one coordinate
type Report struct {
	Coords    types.Coords   `json:"coords"`
	Timezone  string         `json:"timezone" example:"America/New_York"`
	Current   Current        `json:"current"`
	Forecast  []DailySummary `json:"forecast"`
	Provider  string         `json:"provider" example:"openweathermap"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// Current conditions. Temperatures are rounded to whole degrees.
type Current struct {
	Temperature types.Temperature `json:"temperature"`
	FeelsLike   types.Temperature `json:"feels_like"`
	Condition   types.Condition   `json:"condition" example:"Clouds"`
	Description string            `json:"description" example:"scattered clouds"`
	Icon        string            `json:"icon" example:"cloud"`
	Humidity    int               `json:"humidity" example:"55"`
	Wind        types.Wind        `json:"wind"`
}

// DailySummary is one day of the outlook
type DailySummary struct {
	Date        string            `json:"date" example:"2026-10-17"`
	Label       string            `json:"label" example:"Sat, Oct 17"`
	Temperature types.Temperature `json:"temperature"`
	Condition   types.Condition   `json:"condition" example:"Rain"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon" example:"opacity"`
}

func newDailySummary(day time.Time, celsius float64, condition types.Condition, description string) DailySummary {
	return DailySummary{
		Date:        day.Format(time.DateOnly),
		Label:       day.Format(LabelLayout),
		Temperature: types.NewTemperatureFromCelsius(celsius).Rounded(),
		Condition:   condition,
		Description: description,
		Icon:        condition.Icon(),
	}
}
