package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pixel-weather/internal/providers/openmeteo"
	"pixel-weather/internal/providers/openstreetmap"
	"pixel-weather/internal/types"

	"github.com/patrickmn/go-cache"
)

// FallbackPlaceName is reported when reverse geocoding yields nothing usable.
const FallbackPlaceName = "Your Location"

var (
	ErrNotFound           = errors.New("city not found")
	ErrServiceUnavailable = errors.New("geocoding service unavailable")
	ErrInvalidLatitude    = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude   = errors.New("longitude must be between -180 and 180")
)

// Service resolves place names to coordinates and back
type Service interface {
	// Forward returns the best match for a free-text place name
	Forward(ctx context.Context, name string) (types.Location, error)
	// Reverse returns a human-readable name for the coordinates. It never fails.
	Reverse(ctx context.Context, latitude, longitude float64) string
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider  GeocodeProvider
	locationProvider ReverseGeocodeProvider
	cache            *cache.Cache
	logger           *slog.Logger
}

// NewLocationService creates a new location service. A zero cacheTTL disables caching.
func NewLocationService(
	geocodeProvider GeocodeProvider,
	locationProvider ReverseGeocodeProvider,
	cacheTTL time.Duration,
	logger *slog.Logger,
) Service {
	var c *cache.Cache
	if cacheTTL > 0 {
		c = cache.New(cacheTTL, 2*cacheTTL)
	}
	return &locationService{
		geocodeProvider:  geocodeProvider,
		locationProvider: locationProvider,
		cache:            c,
		logger:           logger.With("component", "location-service"),
	}
}

// ValidateCoordinates checks that latitude and longitude are in range
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

func (s *locationService) Forward(ctx context.Context, name string) (types.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Location{}, ErrNotFound
	}

	key := "forward:" + strings.ToLower(name)
	if loc, ok := s.cached(key); ok {
		if l, ok := loc.(types.Location); ok {
			return l, nil
		}
	}

	resp, err := s.geocodeProvider.Search(ctx, name, 1)
	if err != nil {
		s.logger.Error("failed to geocode place name", "name", name, "error", err)
		return types.Location{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if resp == nil || len(resp.Results) == 0 {
		s.logger.Info("no geocoding results", "name", name)
		return types.Location{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	loc, err := translateGeocodingResult(resp.Results[0])
	if err != nil {
		s.logger.Error("malformed geocoding result", "name", name, "error", err)
		return types.Location{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	s.store(key, loc)

	s.logger.Debug("geocoded place name",
		"name", name,
		"resolved", loc.DisplayName,
		"latitude", loc.Coordinates.Latitude,
		"longitude", loc.Coordinates.Longitude,
	)

	return loc, nil
}

func (s *locationService) Reverse(ctx context.Context, latitude, longitude float64) string {
	key := "reverse:" + types.NewCoords(latitude, longitude).String()
	if name, ok := s.cached(key); ok {
		if n, ok := name.(string); ok {
			return n
		}
	}

	resp, err := s.locationProvider.Lookup(ctx, latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return FallbackPlaceName
	}

	name := translatePlaceName(resp)
	if name == "" {
		return FallbackPlaceName
	}

	s.store(key, name)
	return name
}

func (s *locationService) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *locationService) store(key string, value any) {
	if s.cache == nil {
		return
	}
	s.cache.Set(key, value, cache.DefaultExpiration)
}

// translateGeocodingResult converts an Open-Meteo geocoding match to a domain Location
func translateGeocodingResult(r openmeteo.GeocodingResult) (types.Location, error) {
	if r.Name == "" {
		return types.Location{}, errors.New("geocoding result has no name")
	}
	if err := ValidateCoordinates(r.Latitude, r.Longitude); err != nil {
		return types.Location{}, fmt.Errorf("geocoding result has invalid coordinates: %w", err)
	}

	return types.Location{
		Coordinates: types.NewCoords(r.Latitude, r.Longitude),
		DisplayName: r.Name,
		Country:     r.Country,
		Timezone:    r.Timezone,
	}, nil
}

// translatePlaceName picks the most specific populated name from a Nominatim response
func translatePlaceName(resp *openstreetmap.LookupAPIResponse) string {
	if resp == nil {
		return ""
	}

	for _, candidate := range []string{
		resp.Address.City,
		resp.Address.Town,
		resp.Address.Village,
		resp.Address.County,
		resp.Name,
	} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}
