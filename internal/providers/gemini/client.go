package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// API Docs: https://ai.google.dev/gemini-api/docs/text-generation
const (
	DefaultModel = "gemini-1.5-pro"
	jsonMIMEType = "application/json"
)

var ErrEmptyResponse = errors.New("model returned no text")

// Request is a single-turn generation request
type Request struct {
	Prompt string

	// JSON asks for an application/json response, optionally constrained by Schema
	JSON   bool
	Schema *genai.Schema
}

type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

// NewClient creates a Gemini API client. httpOptions may override the base URL.
func NewClient(ctx context.Context, apiKey, model string, temperature float64, logger *slog.Logger, httpOptions ...genai.HTTPOptions) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(httpOptions) > 0 {
		cfg.HTTPOptions = httpOptions[0]
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client:      client,
		model:       model,
		temperature: float32(temperature),
		logger:      logger.With("component", "gemini-client"),
	}, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Generate sends the prompt to the model and returns the reply text
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}

	if req.JSON {
		config.ResponseMIMEType = jsonMIMEType
		config.ResponseSchema = req.Schema
	}

	c.logger.Debug("generating content",
		"model", c.model,
		"prompt_length", len(req.Prompt),
		"json", req.JSON,
	)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		c.logger.Error("gemini generation failed", "model", c.model, "error", err)
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("successfully generated content", "reply_length", len(text))

	return text, nil
}
