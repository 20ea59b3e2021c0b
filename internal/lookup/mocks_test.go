package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"pixel-weather/internal/location"
	"pixel-weather/internal/store"
	"pixel-weather/internal/types"
	"pixel-weather/internal/weather"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockLocations struct {
	forward      map[string]types.Location
	forwardErr   error
	reverseName  string
	forwardCalls int
	reverseCalls int
}

func (m *mockLocations) Forward(ctx context.Context, name string) (types.Location, error) {
	m.forwardCalls++
	if m.forwardErr != nil {
		return types.Location{}, m.forwardErr
	}
	loc, ok := m.forward[name]
	if !ok {
		return types.Location{}, location.ErrNotFound
	}
	return loc, nil
}

func (m *mockLocations) Reverse(ctx context.Context, latitude, longitude float64) string {
	m.reverseCalls++
	if m.reverseName == "" {
		return location.FallbackPlaceName
	}
	return m.reverseName
}

type mockWeather struct {
	currentErr    error
	forecastErr   error
	currentCalls  int
	forecastCalls int
	lastLocation  types.Location
	lastUnits     types.UnitSystem
	lastDays      int
}

func (m *mockWeather) FetchCurrent(ctx context.Context, loc types.Location, units types.UnitSystem) (*weather.CurrentConditions, error) {
	m.currentCalls++
	m.lastLocation = loc
	m.lastUnits = units
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return &weather.CurrentConditions{
		PlaceName:   loc.DisplayName,
		Country:     loc.Country,
		Units:       units,
		Temperature: 21,
		Condition:   types.Classify(0),
	}, nil
}

func (m *mockWeather) FetchForecast(ctx context.Context, loc types.Location, units types.UnitSystem, dayCount int) (weather.Forecast, error) {
	m.forecastCalls++
	m.lastDays = dayCount
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	forecast := make(weather.Forecast, dayCount)
	for i := range forecast {
		forecast[i] = weather.ForecastEntry{EpochSeconds: int64(i) * 86400, Condition: types.Classify(3)}
	}
	return forecast, nil
}

type mockTimezones struct {
	zone string
	err  error
}

func (m *mockTimezones) GetTimezone(latitude, longitude float64) (string, error) {
	return m.zone, m.err
}

type mockObserver struct {
	mu    sync.Mutex
	kinds []string
	errs  []error
}

func (m *mockObserver) ObserveLookup(kind string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kinds = append(m.kinds, kind)
	m.errs = append(m.errs, err)
}

type mockPreferences struct {
	prefs   store.Preferences
	saveErr error
	saves   int
}

func (m *mockPreferences) Load(ctx context.Context) (store.Preferences, error) {
	return m.prefs, nil
}

func (m *mockPreferences) Save(ctx context.Context, prefs store.Preferences) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.prefs = prefs
	return nil
}

var errBackend = errors.New("backend down")

var (
	paris = types.Location{
		Coordinates: types.NewCoords(48.85341, 2.3488),
		DisplayName: "Paris",
		Country:     "France",
		Timezone:    "Europe/Paris",
	}
	newYork = types.Location{
		Coordinates: types.NewCoords(40.71427, -74.00597),
		DisplayName: "New York",
		Country:     "United States",
		Timezone:    "America/New_York",
	}
)
