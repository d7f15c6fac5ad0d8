package assistant

import (
	"regexp"
	"strings"
)

// placeWord is a capitalised word. Dots only appear in abbreviations such as
// "St." or "U.S.", so a sentence-ending period ends the name.
const placeWord = `(?:(?:St|Mt|Ft|Pt)\.|\p{Lu}(?:\.\p{Lu})+\.?|\p{Lu}[\p{L}'\-]*)`

// A place name is a run of capitalised words after in/at/to/visit, optionally
// comma separated: "in New York City", "visit Rome, Italy"
var locationRe = regexp.MustCompile(
	`\b(?i:in|at|to|visit)\s+(` + placeWord + `(?:[ \t]*,?[ \t]+` + placeWord + `)*)`,
)

// calendarWords are capitalised but never places
var calendarWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"spring": true, "summer": true, "autumn": true, "fall": true, "winter": true,
}

// ExtractLocation finds the place a message mentions. When several are named the
// last one wins: "flights from Boston to Lisbon" yields "Lisbon".
func ExtractLocation(message string) (string, bool) {
	matches := locationRe.FindAllStringSubmatch(message, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		name := strings.TrimRight(matches[i][1], " \t,")
		first := strings.ToLower(strings.Trim(strings.Fields(name)[0], ",."))
		if calendarWords[first] {
			continue
		}
		return name, true
	}
	return "", false
}
