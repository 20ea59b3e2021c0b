package main

import (
	"context"
	"log/slog"
	"net/http"

	"pixel-weather/internal/bootstrap"
	"pixel-weather/internal/config"
	"pixel-weather/internal/lookup"
	"pixel-weather/internal/store"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	lookupService  lookup.Service
	preferences    *store.PreferencesRepository
	cities         *store.CityRepository
	metricsHandler http.Handler
	forecastDays   int
	close          func() error
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	services, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := newApp(services.Lookup, services.Preferences, services.Cities, services.Metrics.Handler(), cfg.App.ForecastDays, logger)
	app.close = services.Close

	return app, nil
}

func newApp(
	lookupService lookup.Service,
	preferences *store.PreferencesRepository,
	cities *store.CityRepository,
	metricsHandler http.Handler,
	forecastDays int,
	logger *slog.Logger,
) *App {
	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger.With("component", "api"),
		lookupService:  lookupService,
		preferences:    preferences,
		cities:         cities,
		metricsHandler: metricsHandler,
		forecastDays:   forecastDays,
		close:          func() error { return nil },
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases the preference store
func (app *App) Close() error {
	return app.close()
}
