package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

const CitiesKey = "weatherAppCities"

var (
	ErrEmptyCityName = errors.New("city name must not be empty")
	ErrCityExists    = errors.New("city already saved")
)

// CityRepository keeps an ordered list of distinct city names. Every
// mutation rewrites the whole list.
type CityRepository struct {
	kv     KV
	logger *slog.Logger
}

func NewCityRepository(kv KV, logger *slog.Logger) *CityRepository {
	return &CityRepository{
		kv:     kv,
		logger: logger.With("component", "saved-cities"),
	}
}

// List returns the saved names in insertion order. Missing or malformed data
// yields an empty list.
func (r *CityRepository) List(ctx context.Context) ([]string, error) {
	raw, err := r.kv.Get(ctx, CitiesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load saved cities: %w", err)
	}

	var cities []string
	if err := json.Unmarshal(raw, &cities); err != nil {
		r.logger.Warn("ignoring malformed saved cities", "error", err)
		return []string{}, nil
	}

	return dedupe(cities), nil
}

// Add appends name. An already saved name leaves the list unchanged and
// returns ErrCityExists together with the current list.
func (r *CityRepository) Add(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCityName
	}

	cities, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Contains(cities, name) {
		return cities, fmt.Errorf("%w: %q", ErrCityExists, name)
	}

	cities = append(cities, name)
	if err := r.save(ctx, cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// Remove deletes name if present. Removing an unknown name is a no-op.
func (r *CityRepository) Remove(ctx context.Context, name string) ([]string, error) {
	cities, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.Index(cities, strings.TrimSpace(name))
	if idx < 0 {
		return cities, nil
	}

	cities = slices.Delete(cities, idx, idx+1)
	if err := r.save(ctx, cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) save(ctx context.Context, cities []string) error {
	raw, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("failed to encode saved cities: %w", err)
	}
	if err := r.kv.Set(ctx, CitiesKey, raw); err != nil {
		return fmt.Errorf("failed to save cities: %w", err)
	}
	return nil
}

func dedupe(cities []string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
