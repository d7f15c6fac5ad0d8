//go:build integration

package gemini

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestClient_Generate_Integration(t *testing.T) {
	apiKey := os.Getenv("LOCAL_GUIDE_PROVIDERS_GEMINI_APIKEY")
	if apiKey == "" {
		t.Skip("LOCAL_GUIDE_PROVIDERS_GEMINI_APIKEY not set")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, apiKey, os.Getenv("LOCAL_GUIDE_PROVIDERS_GEMINI_MODEL"), 0.7,
		slog.New(slog.NewTextHandler(os.Stdout, nil)))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	reply, err := client.Generate(ctx, Request{Prompt: "Name one landmark in Lisbon in a single sentence."})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	t.Logf("Reply: %s", reply)
}
