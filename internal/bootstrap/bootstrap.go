// Package bootstrap builds the dependency graph shared by the API server and
// the CLI from a loaded configuration.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"pixel-weather/internal/config"
	"pixel-weather/internal/location"
	"pixel-weather/internal/lookup"
	"pixel-weather/internal/metrics"
	"pixel-weather/internal/providers/openmeteo"
	"pixel-weather/internal/providers/openstreetmap"
	"pixel-weather/internal/store"
	"pixel-weather/internal/timezone"
	"pixel-weather/internal/weather"
)

// Services holds everything a front end needs. Close releases the store.
type Services struct {
	Metrics     *metrics.Metrics
	Store       store.KV
	Lookup      lookup.Service
	Preferences *store.PreferencesRepository
	Cities      *store.CityRepository
}

func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	m := metrics.New()
	up := cfg.Upstream

	geocoder := openmeteo.NewGeocodingClient(
		up.GeocodingURL,
		m.HTTPClient(metrics.UpstreamGeocoding, up.Timeout),
		logger,
	)
	forecaster := openmeteo.NewForecastClient(
		up.ForecastURL,
		m.HTTPClient(metrics.UpstreamForecast, up.Timeout),
		logger,
	)
	reverse := openstreetmap.NewClient(
		up.ReverseGeocodingURL,
		up.UserAgent,
		up.ReverseRPS,
		m.HTTPClient(metrics.UpstreamReverseGeocoding, up.Timeout),
		logger,
	)

	// Without tzf the forecast upstream resolves the zone itself
	var timezones lookup.TimezoneResolver
	if tz, err := timezone.NewService(); err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	} else {
		timezones = tz
	}

	kv, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}

	locations := location.NewLocationService(geocoder, reverse, up.CacheTTL, logger)
	weatherSvc := weather.NewWeatherService(forecaster, logger)

	return &Services{
		Metrics:     m,
		Store:       kv,
		Lookup:      lookup.NewLookupService(locations, weatherSvc, timezones, m, cfg.App.ForecastDays, logger),
		Preferences: store.NewPreferencesRepository(kv, logger),
		Cities:      store.NewCityRepository(kv, logger),
	}, nil
}

func (s *Services) Close() error {
	return s.Store.Close()
}
