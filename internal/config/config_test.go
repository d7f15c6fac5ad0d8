package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.App.DefaultLatitude != 40.7142 || cfg.App.DefaultLongitude != -74.0060 {
		t.Errorf("default coordinate = (%v, %v), want (40.7142, -74.006)",
			cfg.App.DefaultLatitude, cfg.App.DefaultLongitude)
	}
	if cfg.App.ForecastDays != 5 {
		t.Errorf("App.ForecastDays = %d, want 5", cfg.App.ForecastDays)
	}
	if cfg.App.SessionTTL != 24*time.Hour {
		t.Errorf("App.SessionTTL = %v, want 24h", cfg.App.SessionTTL)
	}
	if cfg.Providers.Gemini.Model != "gemini-1.5-pro" {
		t.Errorf("Providers.Gemini.Model = %q, want gemini-1.5-pro", cfg.Providers.Gemini.Model)
	}
	if cfg.Providers.Nominatim.RequestsPerSecond != 1.0 {
		t.Errorf("Providers.Nominatim.RequestsPerSecond = %v, want 1", cfg.Providers.Nominatim.RequestsPerSecond)
	}
	if cfg.Assistant.StructuredOutput {
		t.Error("Assistant.StructuredOutput should default to false")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LOCAL_GUIDE_PROVIDERS_GEMINI_APIKEY", "gemini-secret")
	t.Setenv("LOCAL_GUIDE_PROVIDERS_MAPBOX_TOKEN", "pk.test")
	t.Setenv("LOCAL_GUIDE_SERVER_PORT", "9090")
	t.Setenv("LOCAL_GUIDE_ASSISTANT_STRUCTUREDOUTPUT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Providers.Gemini.APIKey != "gemini-secret" {
		t.Errorf("Providers.Gemini.APIKey = %q, want gemini-secret", cfg.Providers.Gemini.APIKey)
	}
	if cfg.Providers.Mapbox.Token != "pk.test" {
		t.Errorf("Providers.Mapbox.Token = %q, want pk.test", cfg.Providers.Mapbox.Token)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Assistant.StructuredOutput {
		t.Error("Assistant.StructuredOutput = false, want true")
	}
	if got := cfg.GetServerAddr(); got != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", got)
	}
}

func TestDecode_ForecastDays(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{name: "one day", days: 1},
		{name: "sixteen days", days: 16},
		{name: "zero", days: 0, wantErr: true},
		{name: "negative", days: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set("app.forecastDays", tt.days)

			cfg, err := Decode(v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode() = %+v, want error", cfg.App)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if cfg.App.ForecastDays != tt.days {
				t.Errorf("App.ForecastDays = %d, want %d", cfg.App.ForecastDays, tt.days)
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel slog.Level
	}{
		{name: "debug text", level: "debug", format: "text", wantLevel: slog.LevelDebug},
		{name: "warning alias", level: "warning", format: "json", wantLevel: slog.LevelWarn},
		{name: "error json", level: "ERROR", format: "json", wantLevel: slog.LevelError},
		{name: "unknown falls back to info", level: "verbose", format: "", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			logger := cfg.NewLogger()

			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("logger should be enabled at %v", tt.wantLevel)
			}
			if tt.wantLevel > slog.LevelDebug && logger.Enabled(context.Background(), tt.wantLevel-4) {
				t.Errorf("logger should not be enabled below %v", tt.wantLevel)
			}
		})
	}
}
