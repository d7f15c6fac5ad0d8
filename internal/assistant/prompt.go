package assistant

import (
	"strconv"
	"strings"
	"time"

	"local-guide/internal/places"
	"local-guide/internal/types"
)

// LocalTimeLayout formats the "Local time:" prompt line
const LocalTimeLayout = "Mon Jan 2 15:04 MST"

// PromptInput is the context a prompt is built from
type PromptInput struct {
	Message string
	// Place is the currently selected place, if any
	Place  *places.Place
	Coords types.Coords
	// LocalTime is omitted from the prompt when zero
	LocalTime  time.Time
	Structured bool
}

// BuildPrompt renders the guide prompt for a user message
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("As a local guide AI, help with: " + in.Message + "\n")
	if in.Place != nil && in.Place.Name != "" {
		b.WriteString("Regarding: " + in.Place.Name + "\n")
	}
	b.WriteString("Current location: Lat " + formatCoord(in.Coords.Latitude) +
		", Lng " + formatCoord(in.Coords.Longitude) + "\n")
	if !in.LocalTime.IsZero() {
		b.WriteString("Local time: " + in.LocalTime.Format(LocalTimeLayout) + "\n")
	}

	b.WriteString("Please provide detailed, local-specific advice including:\n")
	b.WriteString("- Relevant local attractions\n")
	b.WriteString("- Cultural insights\n")
	b.WriteString("- Practical tips\n")
	b.WriteString("- Transportation options\n")
	b.WriteString("- Time-specific recommendations.\n")

	if in.Structured {
		titles := make([]string, len(Headings))
		for i, h := range Headings {
			titles[i] = h.Title
		}
		b.WriteString(`Respond only with JSON matching {"intro": string, "sections": [{"title": string, "items": [string]}]}.` + "\n")
		b.WriteString("Use these section titles: " + strings.Join(titles, ", ") + ".\n")
	}

	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
