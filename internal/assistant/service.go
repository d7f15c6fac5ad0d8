package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"local-guide/internal/config"
	"local-guide/internal/places"
	"local-guide/internal/providers/gemini"
	"local-guide/internal/ratelimit"
	"local-guide/internal/types"
)

// Apology replaces the reply when generation fails
const Apology = "Sorry, I encountered an error. Please try again."

var (
	ErrEmptyMessage     = errors.New("message must not be empty")
	ErrNotConfigured    = errors.New("assistant is not configured")
	ErrGenerationFailed = errors.New("failed to generate reply")
)

// Generator produces reply text for a prompt
type Generator interface {
	Generate(ctx context.Context, req gemini.Request) (string, error)
}

// Request is a single chat turn
type Request struct {
	Message string
	Place   *places.Place
	Coords  types.Coords
	// Timezone is an IANA name used for the "Local time:" prompt line
	Timezone string
	Speak    bool
}

// Answer is the processed reply to a chat turn
type Answer struct {
	Reply Reply `json:"reply"`
	// Text is the sanitized display text
	Text   string `json:"text"`
	HTML   string `json:"html,omitempty"`
	Speech string `json:"speech,omitempty"`
	// SearchQuery is a place named in the message, for the caller to geocode
	SearchQuery string `json:"search_query,omitempty"`
	Structured  bool   `json:"structured"`
	Failed      bool   `json:"failed"`
}

type Service interface {
	// Ask sends a message to the model and parses the reply. On generation
	// failure the answer carries the apology and the error is also returned.
	Ask(ctx context.Context, req Request) (*Answer, error)
}

type assistantService struct {
	generator  Generator
	limiter    *ratelimit.Limiter
	structured bool
	logger     *slog.Logger
	now        func() time.Time
}

// NewAssistantService creates an assistant backed by Gemini. Without an API key
// the service still runs but every Ask fails with ErrNotConfigured.
func NewAssistantService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Service, error) {
	var generator Generator
	if key := cfg.Providers.Gemini.APIKey; key != "" {
		client, err := gemini.NewClient(ctx, key, cfg.Providers.Gemini.Model, cfg.Assistant.Temperature, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		generator = client
	} else {
		logger.Warn("gemini API key not set, assistant replies are disabled")
	}

	return NewAssistantServiceWithGenerator(generator, cfg, logger), nil
}

// NewAssistantServiceWithGenerator creates an assistant with a custom generator.
// generator may be nil.
func NewAssistantServiceWithGenerator(generator Generator, cfg *config.Config, logger *slog.Logger) Service {
	return &assistantService{
		generator:  generator,
		limiter:    ratelimit.New(cfg.Assistant.RequestsPerSecond),
		structured: cfg.Assistant.StructuredOutput,
		logger:     logger.With("component", "assistant-service"),
		now:        time.Now,
	}
}

func (s *assistantService) Ask(ctx context.Context, req Request) (*Answer, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	answer := &Answer{}
	if loc, ok := ExtractLocation(message); ok {
		answer.SearchQuery = loc
		s.logger.Debug("extracted location from message", "location", loc)
	}

	if s.generator == nil {
		s.fail(answer, req.Speak)
		return answer, ErrNotConfigured
	}

	prompt := BuildPrompt(PromptInput{
		Message:    message,
		Place:      req.Place,
		Coords:     req.Coords,
		LocalTime:  s.localTime(req.Timezone),
		Structured: s.structured,
	})

	if err := s.limiter.Wait(ctx); err != nil {
		s.fail(answer, req.Speak)
		return answer, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	genReq := gemini.Request{Prompt: prompt}
	if s.structured {
		genReq.JSON = true
		genReq.Schema = ReplySchema()
	}

	raw, err := s.generator.Generate(ctx, genReq)
	if err != nil {
		s.logger.Error("failed to generate reply", "error", err)
		s.fail(answer, req.Speak)
		return answer, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	answer.Reply, answer.Structured = s.parse(raw)

	// Structured replies are JSON, so display text comes from the parsed form
	markdown := raw
	if answer.Structured {
		markdown = answer.Reply.Markdown()
	}

	answer.Text = Sanitize(markdown)
	if html, err := RenderHTML(markdown); err != nil {
		s.logger.Warn("failed to render reply html", "error", err)
	} else {
		answer.HTML = html
	}
	if req.Speak {
		answer.Speech = SpeechText(markdown)
	}

	s.logger.Debug("generated reply",
		"section_count", len(answer.Reply.Sections),
		"structured", answer.Structured,
	)

	return answer, nil
}

// parse prefers the structured form when it was requested and falls back to headings
func (s *assistantService) parse(raw string) (Reply, bool) {
	if s.structured {
		reply, err := ParseStructured(raw)
		if err == nil {
			return reply, true
		}
		s.logger.Warn("structured reply did not parse, falling back to headings", "error", err)
	}
	return ParseReply(raw), false
}

func (s *assistantService) fail(answer *Answer, speak bool) {
	answer.Reply = Reply{Intro: Apology, Sections: []Section{}, Raw: Apology}
	answer.Text = Apology
	answer.Failed = true
	if speak {
		answer.Speech = Apology
	}
}

func (s *assistantService) localTime(tz string) time.Time {
	if tz == "" {
		return time.Time{}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		s.logger.Warn("unknown timezone, omitting local time", "timezone", tz, "error", err)
		return time.Time{}
	}
	return s.now().In(loc)
}
