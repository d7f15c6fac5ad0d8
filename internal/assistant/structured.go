package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"google.golang.org/genai"
)

var ErrEmptyStructuredReply = errors.New("structured reply has no intro or sections")

// structuredReply is the JSON shape requested in structured mode
type structuredReply struct {
	Intro    string `json:"intro"`
	Sections []struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	} `json:"sections"`
}

// ReplySchema constrains model output to the structuredReply shape
func ReplySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"intro": {Type: genai.TypeString},
			"sections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {Type: genai.TypeString},
						"items": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"title", "items"},
				},
			},
		},
		Required: []string{"intro", "sections"},
	}
}

// ParseStructured decodes a JSON reply, repairing it or reading it as Hjson when
// strict decoding fails. Section titles are canonicalised like ParseReply.
func ParseStructured(text string) (Reply, error) {
	sr, err := decodeLenient[structuredReply](stripCodeFence(text))
	if err != nil {
		return Reply{}, err
	}

	if strings.TrimSpace(sr.Intro) == "" && len(sr.Sections) == 0 {
		return Reply{}, ErrEmptyStructuredReply
	}

	b := newSectionBuilder()
	for _, s := range sr.Sections {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		i := b.open(s.Title)
		for _, item := range s.Items {
			b.add(i, item)
		}
	}

	return Reply{
		Intro:    strings.TrimSpace(sr.Intro),
		Sections: b.sections(),
		Raw:      text,
	}, nil
}

// decodeLenient tries strict JSON, then json-repair, then Hjson
func decodeLenient[T any](text string) (T, error) {
	var strict T
	if err := json.Unmarshal([]byte(text), &strict); err == nil {
		return strict, nil
	}

	if repaired, err := jsonrepair.RepairJSON(text); err == nil {
		var fixed T
		if err := json.Unmarshal([]byte(repaired), &fixed); err == nil {
			return fixed, nil
		}
	}

	var human T
	if err := hjson.Unmarshal([]byte(text), &human); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse structured reply: %w", err)
	}
	return human, nil
}

// stripCodeFence removes an outer ``` or ```json fence
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
