package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pixel-weather/internal/geolocation"
	"pixel-weather/internal/store"
	"pixel-weather/internal/types"
)

var ErrInvalidUnits = errors.New("units must be metric or imperial")

type PreferencesStore interface {
	Load(ctx context.Context) (store.Preferences, error)
	Save(ctx context.Context, prefs store.Preferences) error
}

type CityStore interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) ([]string, error)
	Remove(ctx context.Context, name string) ([]string, error)
}

// target remembers what the shown result was looked up by, so a unit change
// repeats the same lookup.
type target struct {
	name     string
	coords   types.Coords
	byCoords bool
}

// Controller owns State and applies UI events to it. Lookups run outside the
// lock; when two overlap, whichever finishes last is shown.
type Controller struct {
	mu     sync.Mutex
	state  State
	target *target

	lookups      Service
	preferences  PreferencesStore
	cities       CityStore
	locator      geolocation.Locator
	defaultCity  string
	forecastDays int
	logger       *slog.Logger
}

type ControllerConfig struct {
	DefaultCity  string
	ForecastDays int
}

func NewController(
	lookups Service,
	preferences PreferencesStore,
	cities CityStore,
	locator geolocation.Locator,
	cfg ControllerConfig,
	logger *slog.Logger,
) *Controller {
	if locator == nil {
		locator = geolocation.DeniedLocator{}
	}
	return &Controller{
		state:        initialState(cfg.DefaultCity),
		lookups:      lookups,
		preferences:  preferences,
		cities:       cities,
		locator:      locator,
		defaultCity:  cfg.DefaultCity,
		forecastDays: cfg.ForecastDays,
		logger:       logger.With("component", "controller"),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Restore loads persisted preferences and saved cities. Backend failures are
// logged and leave the defaults in place.
func (c *Controller) Restore(ctx context.Context) State {
	prefs, err := c.preferences.Load(ctx)
	if err != nil {
		c.logger.Warn("using default preferences", "error", err)
	}
	cities, err := c.cities.List(ctx)
	if err != nil {
		c.logger.Warn("saved cities unavailable", "error", err)
		cities = []string{}
	}

	c.mu.Lock()
	c.state.Preferences = prefs
	c.state.SavedCities = cities
	s := c.state.clone()
	c.mu.Unlock()
	return s
}

// Init restores persisted state and looks up the default city.
func (c *Controller) Init(ctx context.Context) State {
	c.Restore(ctx)
	return c.Search(ctx, c.defaultCity)
}

// Search looks up a city by name. Blank input is ignored.
func (c *Controller) Search(ctx context.Context, name string) State {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.State()
	}
	return c.run(ctx, &target{name: name})
}

// Locate asks the locator for the device position and looks it up.
func (c *Controller) Locate(ctx context.Context) State {
	c.update(beginLookup)

	coords, err := c.locator.Locate(ctx)
	if err != nil {
		c.logger.Warn("geolocation failed", "error", err)
		return c.update(func(s State) State {
			return lookupFailed(s, MsgGeolocationDenied)
		})
	}

	return c.run(ctx, &target{coords: coords, byCoords: true})
}

// ChangeUnits persists the unit system and refreshes the shown result, if any.
func (c *Controller) ChangeUnits(ctx context.Context, units types.UnitSystem) (State, error) {
	if !units.Valid() {
		return c.State(), fmt.Errorf("%w: %q", ErrInvalidUnits, units)
	}

	c.mu.Lock()
	prefs := c.state.Preferences
	prefs.Units = units
	c.mu.Unlock()

	if err := c.preferences.Save(ctx, prefs); err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	c.state.Preferences = prefs
	shown := c.state.Result != nil
	last := c.target
	c.mu.Unlock()

	if !shown || last == nil {
		return c.State(), nil
	}
	return c.run(ctx, last), nil
}

// ToggleTheme flips and persists the dark mode flag.
func (c *Controller) ToggleTheme(ctx context.Context) (State, error) {
	c.mu.Lock()
	prefs := c.state.Preferences
	c.mu.Unlock()

	prefs.DarkMode = !prefs.DarkMode
	if err := c.preferences.Save(ctx, prefs); err != nil {
		return c.State(), err
	}

	return c.update(func(s State) State {
		s.Preferences = prefs
		return s
	}), nil
}

// SaveCity adds name to the saved list, or the current city when name is
// blank. Saving a city twice changes nothing.
func (c *Controller) SaveCity(ctx context.Context, name string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.State().City
	}

	cities, err := c.cities.Add(ctx, name)
	if err != nil && !errors.Is(err, store.ErrCityExists) {
		return c.State(), err
	}

	return c.setCities(cities), nil
}

func (c *Controller) RemoveCity(ctx context.Context, name string) (State, error) {
	cities, err := c.cities.Remove(ctx, name)
	if err != nil {
		return c.State(), err
	}
	return c.setCities(cities), nil
}

func (c *Controller) setCities(cities []string) State {
	return c.update(func(s State) State {
		s.SavedCities = cities
		return s
	})
}

// run performs one lookup for t using the current unit preference.
func (c *Controller) run(ctx context.Context, t *target) State {
	var units types.UnitSystem
	c.update(func(s State) State {
		units = s.Preferences.Units
		return beginLookup(s)
	})

	var (
		result *Result
		err    error
	)
	if t.byCoords {
		result, err = c.lookups.LookupByCoords(ctx, t.coords.Latitude, t.coords.Longitude, units, c.forecastDays)
	} else {
		result, err = c.lookups.LookupByName(ctx, t.name, units, c.forecastDays)
	}

	if err != nil {
		c.logger.Error("lookup failed", "error", err)
		return c.update(func(s State) State {
			return lookupFailed(s, Message(err))
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = t
	c.state = lookupSucceeded(c.state, result)
	return c.state.clone()
}

func (c *Controller) update(fn func(State) State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = fn(c.state)
	return c.state.clone()
}
