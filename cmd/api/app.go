package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"local-guide/internal/assistant"
	"local-guide/internal/config"
	"local-guide/internal/location"
	"local-guide/internal/places"
	"local-guide/internal/providers/openstreetmap"
	"local-guide/internal/session"
	"local-guide/internal/timezone"
	"local-guide/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	sessionService session.Service
	placesService  places.Service
	weatherService weather.Service
	store          session.Store
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	osm := cfg.Providers.Nominatim
	nominatim := openstreetmap.NewClient(osm.UserAgent, osm.RequestsPerSecond, logger)

	placesSvc, err := places.NewPlacesService(cfg, nominatim, logger)
	if err != nil {
		return nil, err
	}

	assistantSvc, err := assistant.NewAssistantService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	weatherSvc := weather.NewWeatherService(cfg, tzSvc, logger)
	sessionSvc := session.NewSessionService(
		store,
		location.NewLocationService(cfg, nominatim, tzSvc, logger),
		placesSvc,
		weatherSvc,
		assistantSvc,
		logger,
	)

	app := newApp(cfg, logger, sessionSvc, placesSvc, weatherSvc)
	app.store = store

	logger.Info("application initialized")

	return app, nil
}

func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	sessionService session.Service,
	placesService places.Service,
	weatherService weather.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		sessionService: sessionService,
		placesService:  placesService,
		weatherService: weatherService,
	}

	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases the session store
func (app *App) Close() {
	if app.store != nil {
		app.store.Close()
	}
}
