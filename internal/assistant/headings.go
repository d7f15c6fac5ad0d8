package assistant

import (
	"regexp"
	"strings"
)

// SectionKind groups a reply section by topic
type SectionKind string

const (
	KindAttractions    SectionKind = "attractions"
	KindCulture        SectionKind = "culture"
	KindTips           SectionKind = "tips"
	KindTransportation SectionKind = "transportation"
	KindTiming         SectionKind = "timing"
	KindOther          SectionKind = "other"
)

// Heading is one of the section titles the prompt asks for
type Heading struct {
	Title string      `json:"title"`
	Kind  SectionKind `json:"kind"`
	Icon  string      `json:"icon"`
}

// Headings in the order sections are displayed
var Headings = []Heading{
	{Title: "Local Attractions", Kind: KindAttractions, Icon: "attractions"},
	{Title: "Cultural Insights", Kind: KindCulture, Icon: "info"},
	{Title: "Practical Tips", Kind: KindTips, Icon: "restaurant"},
	{Title: "Transportation Options", Kind: KindTransportation, Icon: "directions_bus"},
	{Title: "Time-Specific Recommendations", Kind: KindTiming, Icon: "schedule"},
}

// aliases maps normalized titles onto a heading kind
var aliases = map[string]SectionKind{
	"local attractions":          KindAttractions,
	"relevant local attractions": KindAttractions,
	"attractions":                KindAttractions,
	"top attractions":            KindAttractions,
	"must see attractions":       KindAttractions,
	"sights":                     KindAttractions,
	"sightseeing":                KindAttractions,
	"things to do":               KindAttractions,

	"cultural insights":     KindCulture,
	"cultural insight":      KindCulture,
	"culture":               KindCulture,
	"local culture":         KindCulture,
	"cultural tips":         KindCulture,
	"customs and etiquette": KindCulture,
	"etiquette":             KindCulture,

	"practical tips":        KindTips,
	"practical tip":         KindTips,
	"tips":                  KindTips,
	"travel tips":           KindTips,
	"practical information": KindTips,
	"practical advice":      KindTips,

	"transportation options": KindTransportation,
	"transportation":         KindTransportation,
	"transport":              KindTransportation,
	"transport options":      KindTransportation,
	"public transportation":  KindTransportation,
	"public transport":       KindTransportation,
	"getting around":         KindTransportation,
	"getting there":          KindTransportation,

	"time specific recommendations":  KindTiming,
	"time specific recommendation":   KindTiming,
	"time specific tips":             KindTiming,
	"time sensitive recommendations": KindTiming,
	"timing":                         KindTiming,
	"best time to visit":             KindTiming,
	"when to go":                     KindTiming,
}

var numberingRe = regexp.MustCompile(`^\d+[.)]\s*`)

var titleReplacer = strings.NewReplacer("-", " ", "&", "and", "/", " ", "*", "", "_", "")

// normalizeTitle lowercases a heading and strips numbering, emphasis and punctuation
func normalizeTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = numberingRe.ReplaceAllString(s, "")
	s = titleReplacer.Replace(s)
	s = strings.Trim(s, " :.!")
	return strings.Join(strings.Fields(s), " ")
}

// lookupHeading resolves a title, or one of its aliases, to a known heading
func lookupHeading(title string) (Heading, bool) {
	kind, ok := aliases[normalizeTitle(title)]
	if !ok {
		return Heading{}, false
	}
	for _, h := range Headings {
		if h.Kind == kind {
			return h, true
		}
	}
	return Heading{}, false
}

// displayTitle cleans an unknown heading for display
func displayTitle(title string) string {
	s := strings.TrimSpace(title)
	s = numberingRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("**", "", "__", "").Replace(s)
	return strings.TrimSpace(strings.TrimRight(s, ": "))
}
