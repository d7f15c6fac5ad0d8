package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"local-guide/internal/assistant"
	"local-guide/internal/config"
	"local-guide/internal/location"
	"local-guide/internal/places"
	"local-guide/internal/session"
	"local-guide/internal/types"
	"local-guide/internal/weather"
)

type mockSessionService struct {
	sessions map[uuid.UUID]*session.Session
	chatErr  error
	nearby   error
}

func newMockSessionService() *mockSessionService {
	return &mockSessionService{sessions: make(map[uuid.UUID]*session.Session)}
}

func (m *mockSessionService) Start(_ context.Context, fix location.Fix) (*session.Session, error) {
	coords := types.NewCoords(fix.Latitude, fix.Longitude)
	if fix.Status != location.FixGranted {
		coords = types.NewCoords(40.7142, -74.0060)
	}
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	sess := &session.Session{ID: uuid.New(), Coords: coords, Messages: []session.Message{}}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionService) get(id uuid.UUID) (*session.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (m *mockSessionService) Get(_ context.Context, id uuid.UUID) (*session.Session, error) {
	return m.get(id)
}

func (m *mockSessionService) Delete(_ context.Context, id uuid.UUID) error {
	if _, err := m.get(id); err != nil {
		return err
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionService) MoveTo(_ context.Context, id uuid.UUID, coords types.Coords) (*session.Session, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	sess.Coords = coords
	return sess, nil
}

func (m *mockSessionService) SelectPlace(_ context.Context, id uuid.UUID, place places.Place) (*session.Session, error) {
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	sess.SelectedPlace = &place
	sess.Coords = types.NewCoordsFromCenter(place.Center)
	return sess, nil
}

func (m *mockSessionService) Chat(_ context.Context, id uuid.UUID, message string, _ bool) (*session.ChatResult, error) {
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if m.chatErr != nil {
		return &session.ChatResult{Session: sess, Answer: &assistant.Answer{Text: assistant.Apology, Failed: true}}, m.chatErr
	}
	return &session.ChatResult{
		Session:    sess,
		Answer:     &assistant.Answer{Text: "Enjoy " + message},
		Candidates: []places.Place{},
	}, nil
}

func (m *mockSessionService) SetVoice(_ context.Context, id uuid.UUID, enabled bool, name string) (*session.Session, error) {
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	sess.Voice = session.Voice{Enabled: enabled}
	if enabled {
		sess.Voice.Name = name
	}
	return sess, nil
}

func (m *mockSessionService) Weather(_ context.Context, id uuid.UUID) (*weather.Report, error) {
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return &weather.Report{Coords: sess.Coords}, nil
}

func (m *mockSessionService) Nearby(_ context.Context, id uuid.UUID, _ uint) (*session.NearbyResult, error) {
	sess, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if m.nearby != nil {
		return nil, m.nearby
	}
	return &session.NearbyResult{Session: sess, Places: []places.Place{}}, nil
}

type mockPlacesService struct {
	near *types.Coords
	err  error
}

func (m *mockPlacesService) Search(_ context.Context, query string, near *types.Coords) ([]places.Place, error) {
	m.near = near
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(query) == "" {
		return nil, places.ErrEmptyQuery
	}
	return []places.Place{{Name: query, Center: [2]float64{-9.1393, 38.7223}}}, nil
}

func (m *mockPlacesService) Reverse(_ context.Context, coords types.Coords) (*places.Place, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	return &places.Place{Name: "Lisbon", Coords: coords}, nil
}

func (m *mockPlacesService) Nearby(context.Context, types.Coords, uint) ([]places.Place, error) {
	return nil, places.ErrNearbyNotConfigured
}

type mockWeatherService struct {
	err error
}

func (m *mockWeatherService) GetReport(_ context.Context, coords types.Coords) (*weather.Report, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &weather.Report{Coords: coords, Timezone: "Europe/Lisbon", Forecast: []weather.DailySummary{}}, nil
}

type testApp struct {
	*App
	sessions *mockSessionService
	places   *mockPlacesService
	weather  *mockWeatherService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ta := &testApp{
		sessions: newMockSessionService(),
		places:   &mockPlacesService{},
		weather:  &mockWeatherService{},
	}
	ta.App = newApp(cfg, logger, ta.sessions, ta.places, ta.weather)
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHandlePing(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[PingResponse](t, rec); got.Message != "pong" {
		t.Errorf("Message = %q, want pong", got.Message)
	}
}

func TestSessionEndpoints(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodPost, "/sessions", `{"status": "denied"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	sess := decode[session.Session](t, rec)
	base := "/sessions/" + sess.ID.String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "get", method: http.MethodGet, path: base, wantStatus: http.StatusOK},
		{name: "get malformed id", method: http.MethodGet, path: "/sessions/not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "get unknown", method: http.MethodGet, path: "/sessions/" + uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "move", method: http.MethodPut, path: base + "/location", body: `{"latitude": 0, "longitude": 0}`, wantStatus: http.StatusOK},
		{name: "move invalid", method: http.MethodPut, path: base + "/location", body: `{"latitude": 91, "longitude": 0}`, wantStatus: http.StatusBadRequest},
		{name: "move malformed body", method: http.MethodPut, path: base + "/location", body: `{"latitude": "north"}`, wantStatus: http.StatusBadRequest},
		{name: "move empty body", method: http.MethodPut, path: base + "/location", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "move missing longitude", method: http.MethodPut, path: base + "/location", body: `{"latitude": 38.7}`, wantStatus: http.StatusBadRequest},
		{name: "select place", method: http.MethodPost, path: base + "/place", body: `{"name": "Lisbon", "center": [-9.1393, 38.7223]}`, wantStatus: http.StatusOK},
		{name: "chat", method: http.MethodPost, path: base + "/chat", body: `{"message": "Best restaurants"}`, wantStatus: http.StatusOK},
		{name: "chat without message", method: http.MethodPost, path: base + "/chat", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "voice", method: http.MethodPut, path: base + "/voice", body: `{"enabled": true, "name": "Samantha"}`, wantStatus: http.StatusOK},
		{name: "weather", method: http.MethodGet, path: base + "/weather", wantStatus: http.StatusOK},
		{name: "nearby", method: http.MethodGet, path: base + "/nearby?radius=1000", wantStatus: http.StatusOK},
		{name: "nearby radius too large", method: http.MethodGet, path: base + "/nearby?radius=999999", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ta.do(t, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d: %s", tt.method, tt.path, rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}

	rec = ta.do(t, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	rec = ta.do(t, http.MethodDelete, base, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHandleChat_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "generation failed",
			err:        fmt.Errorf("%w: %w", assistant.ErrGenerationFailed, errors.New("quota")),
			wantStatus: http.StatusBadGateway,
			wantError:  assistant.Apology,
		},
		{
			name:       "not configured",
			err:        assistant.ErrNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
			wantError:  assistant.ErrNotConfigured.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			sess, _ := ta.sessions.Start(context.Background(), location.Fix{Status: location.FixDenied})
			ta.sessions.chatErr = tt.err

			rec := ta.do(t, http.MethodPost, "/sessions/"+sess.ID.String()+"/chat", `{"message": "Hi"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := decode[ErrorResponse](t, rec); got.Error != tt.wantError {
				t.Errorf("error = %q, want %q", got.Error, tt.wantError)
			}
		})
	}
}

func TestHandleSessionNearby_NotConfigured(t *testing.T) {
	ta := newTestApp(t)
	sess, _ := ta.sessions.Start(context.Background(), location.Fix{Status: location.FixDenied})
	ta.sessions.nearby = places.ErrNearbyNotConfigured

	rec := ta.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/nearby", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandleSearchPlaces(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantNear   bool
	}{
		{name: "query only", query: "?q=Lisbon", wantStatus: http.StatusOK},
		{name: "with proximity", query: "?q=Lisbon&latitude=38.7&longitude=-9.1", wantStatus: http.StatusOK, wantNear: true},
		{name: "missing query", query: "", wantStatus: http.StatusBadRequest},
		{name: "invalid proximity", query: "?q=Lisbon&latitude=123&longitude=0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)

			rec := ta.do(t, http.MethodGet, "/places/search"+tt.query, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Code == http.StatusOK && (ta.places.near != nil) != tt.wantNear {
				t.Errorf("near = %v, want set = %v", ta.places.near, tt.wantNear)
			}
		})
	}
}

func TestHandleSearchPlaces_UpstreamFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.places.err = errors.New("failed to search places: connection refused")

	rec := ta.do(t, http.MethodGet, "/places/search?q=Lisbon", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if got := decode[ErrorResponse](t, rec); got.Error != "failed to search places" {
		t.Errorf("error = %q, upstream details should not leak", got.Error)
	}
}

func TestHandleGetWeather(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "valid", query: "?latitude=38.7223&longitude=-9.1393", wantStatus: http.StatusOK},
		{name: "equator and meridian", query: "?latitude=0&longitude=0", wantStatus: http.StatusOK},
		{name: "missing longitude", query: "?latitude=38.7", wantStatus: http.StatusBadRequest},
		{name: "invalid latitude", query: "?latitude=91&longitude=0", wantStatus: http.StatusBadRequest},
		{name: "no provider", query: "?latitude=1&longitude=1", err: weather.ErrProviderNotConfigured, wantStatus: http.StatusServiceUnavailable},
		{name: "upstream failure", query: "?latitude=1&longitude=1", err: errors.New("fetch returned status 500"), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.weather.err = tt.err

			rec := ta.do(t, http.MethodGet, "/weather"+tt.query, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestHandleReversePlace(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/places/reverse?latitude=38.7223&longitude=-9.1393", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[places.Place](t, rec); got.Name != "Lisbon" {
		t.Errorf("Name = %q, want Lisbon", got.Name)
	}
}

func TestHandleQuickPrompts(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/assistant/quick-prompts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decode[[]assistant.QuickPrompt](t, rec)
	if len(got) != 4 || got[1].Label != "Best restaurants" {
		t.Errorf("quick prompts = %+v", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: got 91", types.ErrInvalidLatitude), want: http.StatusBadRequest},
		{err: assistant.ErrEmptyMessage, want: http.StatusBadRequest},
		{err: places.ErrEmptyQuery, want: http.StatusBadRequest},
		{err: session.ErrNotFound, want: http.StatusNotFound},
		{err: places.ErrNotFound, want: http.StatusNotFound},
		{err: weather.ErrProviderNotConfigured, want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("%w: timeout", assistant.ErrGenerationFailed), want: http.StatusBadGateway},
		{err: errors.New("boom"), want: http.StatusTeapot},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err, http.StatusTeapot); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
