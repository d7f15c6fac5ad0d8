package mapbox

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const lisbonFixture = `{
	"type": "FeatureCollection",
	"query": ["lisbon"],
	"features": [
		{
			"id": "place.123",
			"type": "Feature",
			"place_type": ["place"],
			"relevance": 1,
			"properties": {"wikidata": "Q597"},
			"text": "Lisbon",
			"place_name": "Lisbon, Lisbon, Portugal",
			"center": [-9.1393, 38.7223],
			"geometry": {"type": "Point", "coordinates": [-9.1393, 38.7223]},
			"context": [{"id": "region.1", "text": "Lisbon"}, {"id": "country.2", "text": "Portugal", "short_code": "pt"}]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "pk.test",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_Forward(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/geocoding/v5/mapbox.places/Rua%20Augusta%2F1.json" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		q := r.URL.Query()
		if q.Get("access_token") != "pk.test" {
			t.Errorf("access_token = %q, want pk.test", q.Get("access_token"))
		}
		if q.Get("proximity") != "-9.140000,38.720000" {
			t.Errorf("proximity = %q", q.Get("proximity"))
		}
		_, _ = w.Write([]byte(lisbonFixture))
	})

	proximity := [2]float64{-9.14, 38.72}
	resp, err := client.Forward(context.Background(), "Rua Augusta/1", 5, &proximity)
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if len(resp.Features) != 1 {
		t.Fatalf("len(Features) = %d, want 1", len(resp.Features))
	}

	f := resp.Features[0]
	if f.PlaceName != "Lisbon, Lisbon, Portugal" {
		t.Errorf("PlaceName = %q", f.PlaceName)
	}
	if f.Center != [2]float64{-9.1393, 38.7223} {
		t.Errorf("Center = %v", f.Center)
	}
	if len(f.Context) != 2 || f.Context[1].ShortCode != "pt" {
		t.Errorf("Context = %+v", f.Context)
	}
}

func TestClient_Reverse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/-9.139300,38.722300.json") {
			t.Errorf("path = %q, want lng,lat suffix", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "1" {
			t.Errorf("limit = %q, want 1", r.URL.Query().Get("limit"))
		}
		_, _ = w.Write([]byte(lisbonFixture))
	})

	resp, err := client.Reverse(context.Background(), 38.7223, -9.1393)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if resp.Features[0].Text != "Lisbon" {
		t.Errorf("Text = %q, want Lisbon", resp.Features[0].Text)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Not Authorized - Invalid Token"}`))
	})

	_, err := client.Forward(context.Background(), "Lisbon", 5, nil)
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Errorf("Forward() error = %v, want status 401", err)
	}
}
