package assistant

import (
	"strings"
	"testing"
	"time"

	"local-guide/internal/places"
	"local-guide/internal/types"
)

func TestBuildPrompt(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	coords := types.Coords{Latitude: 38.7223, Longitude: -9.1393}
	advice := "Please provide detailed, local-specific advice including:\n" +
		"- Relevant local attractions\n" +
		"- Cultural insights\n" +
		"- Practical tips\n" +
		"- Transportation options\n" +
		"- Time-specific recommendations.\n"

	tests := []struct {
		name string
		in   PromptInput
		want string
	}{
		{
			name: "message only",
			in:   PromptInput{Message: "Popular attractions", Coords: coords},
			want: "As a local guide AI, help with: Popular attractions\n" +
				"Current location: Lat 38.7223, Lng -9.1393\n" + advice,
		},
		{
			name: "with place and local time",
			in: PromptInput{
				Message:   "Best restaurants",
				Place:     &places.Place{Name: "Lisbon, Portugal"},
				Coords:    coords,
				LocalTime: time.Date(2026, 10, 17, 14, 30, 0, 0, lisbon),
			},
			want: "As a local guide AI, help with: Best restaurants\n" +
				"Regarding: Lisbon, Portugal\n" +
				"Current location: Lat 38.7223, Lng -9.1393\n" +
				"Local time: Sat Oct 17 14:30 WEST\n" + advice,
		},
		{
			name: "unnamed place is omitted",
			in:   PromptInput{Message: "Hi", Place: &places.Place{}, Coords: types.Coords{Latitude: 40, Longitude: -74.006}},
			want: "As a local guide AI, help with: Hi\n" +
				"Current location: Lat 40, Lng -74.006\n" + advice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPrompt(tt.in); got != tt.want {
				t.Errorf("BuildPrompt() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt_Structured(t *testing.T) {
	got := BuildPrompt(PromptInput{Message: "Hi", Structured: true})

	if !strings.Contains(got, "Respond only with JSON") {
		t.Errorf("structured prompt missing JSON instruction:\n%s", got)
	}
	for _, h := range Headings {
		if !strings.Contains(got, h.Title) {
			t.Errorf("structured prompt missing title %q", h.Title)
		}
	}
}

func TestQuickPrompts(t *testing.T) {
	got := QuickPrompts()
	if len(got) != 4 {
		t.Fatalf("len(QuickPrompts()) = %d, want 4", len(got))
	}
	if got[0].Label != "Popular attractions" || got[0].Icon != "location_on" {
		t.Errorf("first prompt = %+v", got[0])
	}

	got[0].Label = "changed"
	if QuickPrompts()[0].Label != "Popular attractions" {
		t.Error("QuickPrompts() should return a copy")
	}
}
