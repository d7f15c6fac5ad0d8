package session

import (
	"time"

	"github.com/google/uuid"

	"local-guide/internal/assistant"
	"local-guide/internal/location"
	"local-guide/internal/mapview"
	"local-guide/internal/places"
	"local-guide/internal/types"
)

// Sender identifies who wrote a transcript message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one transcript entry
type Message struct {
	Sender Sender `json:"sender" example:"user"`
	Text   string `json:"text" example:"Best restaurants"`
	// Reply is the parsed form of an AI message
	Reply *assistant.Reply `json:"reply,omitempty"`
	At    time.Time        `json:"at"`
}

// Voice holds the speech preferences of a session
type Voice struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name,omitempty" example:"Google UK English Female"`
}

// Session is the shared coordinate state every panel derives from
type Session struct {
	ID            uuid.UUID          `json:"id"`
	Coords        types.Coords       `json:"coords"`
	Source        location.Source    `json:"source"`
	Notice        string             `json:"notice,omitempty"`
	Location      types.LocationInfo `json:"location"`
	Timezone      string             `json:"timezone,omitempty" example:"America/New_York"`
	Elevation     *types.Elevation   `json:"elevation,omitempty"`
	SelectedPlace *places.Place      `json:"selected_place,omitempty"`
	Map           mapview.View       `json:"map"`
	Messages      []Message          `json:"messages"`
	Voice         Voice              `json:"voice"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// applyPosition moves the session to pos, keeping whatever enrichment succeeded
func (s *Session) applyPosition(pos *location.Position) {
	s.Coords = pos.Coords
	s.Source = pos.Source
	s.Notice = pos.Notice
	s.Location = pos.Location
	s.Timezone = pos.Timezone
	s.Elevation = pos.Elevation
}

func (s *Session) appendMessage(sender Sender, text string, reply *assistant.Reply, at time.Time) {
	s.Messages = append(s.Messages, Message{Sender: sender, Text: text, Reply: reply, At: at})
}

// clone copies the session deeply enough that callers cannot mutate stored state
func (s *Session) clone() *Session {
	c := *s
	if s.SelectedPlace != nil {
		p := *s.SelectedPlace
		c.SelectedPlace = &p
	}
	if s.Elevation != nil {
		e := *s.Elevation
		c.Elevation = &e
	}
	c.Messages = make([]Message, len(s.Messages))
	copy(c.Messages, s.Messages)
	c.Map.Markers = make([]mapview.Marker, len(s.Map.Markers))
	copy(c.Map.Markers, s.Map.Markers)
	return &c
}
