package assistant

import (
	"regexp"
	"strings"
)

// Section is a labelled group of advice items extracted from a reply
type Section struct {
	Title string      `json:"title" example:"Local Attractions"`
	Kind  SectionKind `json:"kind" example:"attractions"`
	Icon  string      `json:"icon,omitempty" example:"attractions"`
	Items []string    `json:"items"`
}

// Reply is an assistant reply split into an intro and sections
type Reply struct {
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
	Raw      string    `json:"raw"`
}

// Markdown renders the reply back into the bold-heading layout the prompt asks for
func (r Reply) Markdown() string {
	var b strings.Builder
	b.WriteString(r.Intro)
	for _, s := range r.Sections {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("**" + s.Title + ":**")
		for _, item := range s.Items {
			b.WriteString("\n- " + item)
		}
	}
	return b.String()
}

var (
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*#*$`)
	boldLineRe        = regexp.MustCompile(`^(?:\*\*|__)(.+?)(?:\*\*|__)\s*:?\s*(.*)$`)
	plainHeadingRe    = regexp.MustCompile(`^([^:*#]{2,60}):$`)
	bulletRe          = regexp.MustCompile(`^(?:[*\-•+]|\d+[.)])\s+`)
	italicRe          = regexp.MustCompile(`\*([^*\n]+)\*`)
	thematicBreakRe   = regexp.MustCompile(`^(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
)

// ParseReply splits a freeform reply into an intro and sections.
//
// A heading is a markdown heading, a line that starts with a bold label, or a
// known title alone on a line followed by a colon. Bold labels that are not known
// titles only count as headings when nothing else follows on the line, so
// "**Central Park:** a huge park" stays an item.
func ParseReply(text string) Reply {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var (
		intro   []string
		b       = newSectionBuilder()
		current = -1
	)

	for _, line := range lines {
		if thematicBreakRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		if title, rest, ok := classifyHeading(line); ok {
			current = b.open(title)
			b.add(current, rest)
			continue
		}
		if current < 0 {
			intro = append(intro, line)
			continue
		}
		b.add(current, line)
	}

	if current < 0 {
		return Reply{Intro: strings.TrimSpace(text), Sections: []Section{}, Raw: text}
	}

	return Reply{
		Intro:    strings.TrimSpace(strings.Join(intro, "\n")),
		Sections: b.sections(),
		Raw:      text,
	}
}

// classifyHeading reports whether line starts a section, returning its title and
// any text that follows the heading on the same line
func classifyHeading(line string) (title, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	if m := markdownHeadingRe.FindStringSubmatch(trimmed); m != nil {
		return m[1], "", true
	}

	if m := boldLineRe.FindStringSubmatch(trimmed); m != nil {
		title, rest = m[1], strings.TrimSpace(m[2])
		if _, known := lookupHeading(title); known || rest == "" {
			return title, rest, true
		}
		return "", "", false
	}

	// Numbered or bulleted bold headings, "1. **Local Attractions:**", known titles only
	if stripped := bulletRe.ReplaceAllString(trimmed, ""); stripped != trimmed {
		if m := boldLineRe.FindStringSubmatch(stripped); m != nil && strings.TrimSpace(m[2]) == "" {
			if _, known := lookupHeading(m[1]); known {
				return m[1], "", true
			}
		}
	}

	if m := plainHeadingRe.FindStringSubmatch(trimmed); m != nil {
		if _, known := lookupHeading(m[1]); known {
			return m[1], "", true
		}
	}

	return "", "", false
}

// cleanItem strips list markers and emphasis from a body line
func cleanItem(line string) string {
	s := strings.TrimSpace(line)
	s = bulletRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("**", "", "__", "").Replace(s)
	s = italicRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// sectionBuilder merges repeated headings and orders sections for display
type sectionBuilder struct {
	list  []Section
	index map[string]int
}

func newSectionBuilder() *sectionBuilder {
	return &sectionBuilder{index: make(map[string]int)}
}

// open returns the index of the section for title, creating it on first use
func (b *sectionBuilder) open(title string) int {
	var (
		key string
		sec Section
	)
	if h, ok := lookupHeading(title); ok {
		key = string(h.Kind)
		sec = Section{Title: h.Title, Kind: h.Kind, Icon: h.Icon}
	} else {
		key = string(KindOther) + ":" + normalizeTitle(title)
		sec = Section{Title: displayTitle(title), Kind: KindOther}
	}

	if i, ok := b.index[key]; ok {
		return i
	}
	sec.Items = []string{}
	b.list = append(b.list, sec)
	b.index[key] = len(b.list) - 1
	return len(b.list) - 1
}

func (b *sectionBuilder) add(i int, line string) {
	if item := cleanItem(line); item != "" {
		b.list[i].Items = append(b.list[i].Items, item)
	}
}

// sections returns known sections in display order, then the rest in reply order
func (b *sectionBuilder) sections() []Section {
	out := make([]Section, 0, len(b.list))
	for _, h := range Headings {
		if i, ok := b.index[string(h.Kind)]; ok {
			out = append(out, b.list[i])
		}
	}
	for _, s := range b.list {
		if s.Kind == KindOther {
			out = append(out, s)
		}
	}
	return out
}
