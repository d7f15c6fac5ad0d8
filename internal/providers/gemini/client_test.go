package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), "gemini-test", "", 0.7,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		genai.HTTPOptions{BaseURL: srv.URL + "/"},
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

const replyFixture = `{
	"candidates": [{
		"content": {"role": "model", "parts": [{"text": "  **Local Attractions:** Visit the High Line.  "}]},
		"finishReason": "STOP"
	}]
}`

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantMIME string
	}{
		{
			name: "freeform",
			req:  Request{Prompt: "As a local guide AI, help with: parks"},
		},
		{
			name: "json with schema",
			req: Request{
				Prompt: "As a local guide AI, help with: parks",
				JSON:   true,
				Schema: &genai.Schema{Type: genai.TypeObject},
			},
			wantMIME: jsonMIMEType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "models/"+DefaultModel+":generateContent") {
					t.Errorf("path = %q, want generateContent on %s", r.URL.Path, DefaultModel)
				}

				var body struct {
					GenerationConfig struct {
						ResponseMIMEType string `json:"responseMimeType"`
					} `json:"generationConfig"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("failed to decode request body: %v", err)
				}
				if body.GenerationConfig.ResponseMIMEType != tt.wantMIME {
					t.Errorf("responseMimeType = %q, want %q", body.GenerationConfig.ResponseMIMEType, tt.wantMIME)
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(replyFixture))
			})

			got, err := client.Generate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got != "**Local Attractions:** Visit the High Line." {
				t.Errorf("Generate() = %q", got)
			}
		})
	}
}

func TestClient_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:   "upstream error",
			status: http.StatusInternalServerError,
			body:   `{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`,
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates": []}`,
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Generate(context.Background(), Request{Prompt: "hello"})
			if err == nil {
				t.Fatal("Generate() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
