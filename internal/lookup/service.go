// Package lookup chains geocoding and weather fetching into single
// all-or-nothing lookups and owns the application state built on top of them.
package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"pixel-weather/internal/location"
	"pixel-weather/internal/types"
	"pixel-weather/internal/weather"
)

// AutoTimezone asks the forecast upstream to resolve the zone itself.
const AutoTimezone = "auto"

const (
	KindName   = "name"
	KindCoords = "coords"
)

// Result is one complete lookup. Current and Forecast always share Location
// and Units.
type Result struct {
	Location types.Location             `json:"location"`
	Current  *weather.CurrentConditions `json:"current"`
	Forecast weather.Forecast           `json:"forecast"`
	Units    types.UnitSystem           `json:"units"`
}

type Service interface {
	// LookupByName geocodes name and fetches weather for the first match.
	LookupByName(ctx context.Context, name string, units types.UnitSystem, dayCount int) (*Result, error)
	// LookupByCoords fetches weather for the coordinates and names the place
	// on a best-effort basis.
	LookupByCoords(ctx context.Context, latitude, longitude float64, units types.UnitSystem, dayCount int) (*Result, error)
}

// TimezoneResolver finds the IANA zone for coordinates.
type TimezoneResolver interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// Observer is told about every finished lookup.
type Observer interface {
	ObserveLookup(kind string, err error)
}

type lookupService struct {
	locations    location.Service
	weather      weather.Service
	timezones    TimezoneResolver
	observer     Observer
	forecastDays int
	logger       *slog.Logger
}

// NewLookupService wires the lookup chain. timezones and observer may be nil.
// forecastDays is used when a caller passes a non-positive day count.
func NewLookupService(
	locations location.Service,
	weatherService weather.Service,
	timezones TimezoneResolver,
	observer Observer,
	forecastDays int,
	logger *slog.Logger,
) Service {
	if forecastDays <= 0 {
		forecastDays = weather.DefaultForecastDays
	}
	return &lookupService{
		locations:    locations,
		weather:      weatherService,
		timezones:    timezones,
		observer:     observer,
		forecastDays: forecastDays,
		logger:       logger.With("component", "lookup-service"),
	}
}

func (s *lookupService) LookupByName(ctx context.Context, name string, units types.UnitSystem, dayCount int) (result *Result, err error) {
	defer func() { s.observe(KindName, err) }()

	loc, err := s.locations.Forward(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", name, err)
	}

	return s.fetch(ctx, loc, units, dayCount)
}

func (s *lookupService) LookupByCoords(ctx context.Context, latitude, longitude float64, units types.UnitSystem, dayCount int) (result *Result, err error) {
	defer func() { s.observe(KindCoords, err) }()

	if err := location.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	loc := types.Location{
		Coordinates: types.NewCoords(latitude, longitude),
		Timezone:    s.timezoneFor(latitude, longitude),
	}

	result, err = s.fetch(ctx, loc, units, dayCount)
	if err != nil {
		return nil, err
	}

	name := s.locations.Reverse(ctx, latitude, longitude)
	result.Location.DisplayName = name
	result.Current.PlaceName = name

	return result, nil
}

// fetch retrieves current conditions and the forecast for loc. Either failure
// fails the whole lookup.
func (s *lookupService) fetch(ctx context.Context, loc types.Location, units types.UnitSystem, dayCount int) (*Result, error) {
	units = types.ParseUnitSystem(string(units))
	if dayCount <= 0 {
		dayCount = s.forecastDays
	}

	current, err := s.weather.FetchCurrent(ctx, loc, units)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	forecast, err := s.weather.FetchForecast(ctx, loc, units, dayCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	s.logger.Debug("lookup complete",
		"place", loc.DisplayName,
		"coordinates", loc.Coordinates.String(),
		"units", units,
		"days", len(forecast),
	)

	return &Result{
		Location: loc,
		Current:  current,
		Forecast: forecast,
		Units:    units,
	}, nil
}

func (s *lookupService) timezoneFor(latitude, longitude float64) string {
	if s.timezones == nil {
		return AutoTimezone
	}
	tz, err := s.timezones.GetTimezone(latitude, longitude)
	if err != nil {
		s.logger.Warn("timezone lookup failed, letting upstream resolve it",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return AutoTimezone
	}
	return tz
}

func (s *lookupService) observe(kind string, err error) {
	if s.observer != nil {
		s.observer.ObserveLookup(kind, err)
	}
}
