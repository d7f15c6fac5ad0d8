package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Providers ProvidersConfig
	Assistant AssistantConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultLatitude  float64       // Used when the device location is unavailable
	DefaultLongitude float64       // Used when the device location is unavailable
	ForecastDays     int           // Number of days in the weather outlook
	SessionTTL       time.Duration // How long an idle session is kept in memory
	DatabaseURL      string        // Postgres session store; empty keeps sessions in memory
}

// ProvidersConfig holds credentials and endpoints for third-party APIs.
// Secrets are read from the environment or a .env file, never from client code.
type ProvidersConfig struct {
	Mapbox         MapboxConfig
	OpenWeatherMap OpenWeatherMapConfig
	GooglePlaces   GooglePlacesConfig
	Gemini         GeminiConfig
	Nominatim      NominatimConfig
}

type MapboxConfig struct {
	Token string
}

type OpenWeatherMapConfig struct {
	APIKey string
}

type GooglePlacesConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type NominatimConfig struct {
	UserAgent         string
	RequestsPerSecond float64
}

// AssistantConfig holds conversational assistant tuning
type AssistantConfig struct {
	StructuredOutput  bool    // Ask the model for JSON sections instead of freeform text
	Temperature       float64 // Sampling temperature passed to the model
	RequestsPerSecond float64 // Outbound generation rate limit
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.local-guide")

	SetDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("LOCAL_GUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Decode(v)
}

// SetDefaults registers the built-in defaults on v.
// AutomaticEnv only resolves keys viper already knows about, so every
// environment-overridable key needs a default here.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// New York City
	v.SetDefault("app.defaultLatitude", 40.7142)
	v.SetDefault("app.defaultLongitude", -74.0060)
	v.SetDefault("app.forecastDays", 5)
	v.SetDefault("app.sessionTTL", 24*time.Hour)
	v.SetDefault("app.databaseURL", "")

	v.SetDefault("providers.mapbox.token", "")
	v.SetDefault("providers.openweathermap.apikey", "")
	v.SetDefault("providers.googleplaces.apikey", "")
	v.SetDefault("providers.gemini.apikey", "")
	v.SetDefault("providers.gemini.model", "gemini-1.5-pro")
	v.SetDefault("providers.nominatim.useragent", "local-guide/1.0")
	v.SetDefault("providers.nominatim.requestspersecond", 1.0)

	v.SetDefault("assistant.structuredOutput", false)
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.requestsPerSecond", 2.0)
}

// Decode unmarshals v into a Config
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.ForecastDays < 1 {
		return nil, fmt.Errorf("app.forecastDays must be at least 1, got %d", cfg.App.ForecastDays)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
